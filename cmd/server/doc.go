// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Command server runs the LoveSync recommendation and conversational learning
engine.

It learns each user's attribute preferences from swipes and onboarding
conversations, scores pairs of users by the cosine similarity of their
preference vectors and serves ranked recommendations over a JSON HTTP API.

# Startup

 1. Configuration: Koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog, JSON or console
 3. Storage: BadgerDB, on disk or in memory
 4. Event bus: Watermill in-process pub/sub with a breaker-guarded publisher
 5. Directory: users loaded into memory and a spatial grid
 6. Preference store, swipe service, ranker, compatibility, conversations
 7. Supervisor tree: janitor, event router, HTTP server

	RootSupervisor ("lovesync")
	├── maintenance-layer
	│   └── janitor
	├── events-layer
	│   └── event-router
	└── api-layer
	    └── http-server

# Configuration

Priority: environment variables > config file > defaults.

	HTTP_PORT=8080
	LOG_LEVEL=info                 # trace, debug, info, warn, error
	LOG_FORMAT=json                # json or console
	BADGER_PATH=/data/lovesync
	BADGER_IN_MEMORY=false
	PREFERENCE_ALPHA=0.15          # decay factor of the preference model
	CONVERSATION_MAX_FOLLOW_UPS=2
	CONVERSATION_SESSION_TTL=30m
	RATE_LIMIT_REQUESTS=100
	CORS_ORIGINS=*
	CONFIG_PATH=/etc/lovesync/config.yaml

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains for
HTTP_SHUTDOWN_TIMEOUT, the event router closes, then storage is closed.
*/
package main
