// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package metrics provides Prometheus instrumentation for LoveSync.

All collectors are registered on the default registry through promauto and
exposed by the API at /metrics:

	curl http://localhost:8080/metrics

Callers use the Record* helpers rather than touching collectors directly, so
label sets stay consistent across packages.
*/
package metrics
