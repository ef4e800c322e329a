// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package config loads LoveSync configuration with Koanf v2.

Sources, lowest to highest priority:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, ./config.yaml, /etc/lovesync/config.yaml
 3. Environment variables, mapped explicitly (HTTP_PORT, LOG_LEVEL, PREFERENCE_ALPHA, ...)

Example config.yaml:

	server:
	  port: 8080
	storage:
	  path: /var/lib/lovesync
	preference:
	  alpha: 0.2
	conversation:
	  max_follow_ups: 1
	  session_ttl: 15m

Duration values accept Go duration strings ("30s", "5m"). CORS_ORIGINS accepts a
comma-separated list.
*/
package config
