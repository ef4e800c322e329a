// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package supervisor runs the long-lived parts of LoveSync under a suture v4
supervisor tree.

	RootSupervisor ("lovesync")
	├── maintenance-layer
	│   └── JanitorService (session sweep, rate windows, cache expiry)
	├── events-layer
	│   └── EventRouterService (Watermill router over the in-process bus)
	└── api-layer
	    └── HTTPServerService

Each layer counts failures independently, so a consumer that keeps crashing
backs off without taking the HTTP server with it. Supervisor events are
logged through sutureslog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
