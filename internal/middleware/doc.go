// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package middleware provides HTTP middleware for the LoveSync API.

All middleware use the http.HandlerFunc signature; the api package adapts
them to chi with a small wrapper.

Key Components:

  - RequestID: request and correlation IDs in headers and logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - RequestLogger: one structured zerolog line per request

Order in the chi stack:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.RequestLogger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

RequestLogger sits outside Recoverer so recovered panics are logged with
their 500 status.
*/
package middleware
