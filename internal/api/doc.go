// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package api provides the HTTP JSON interface of the match engine.

Endpoints:

	POST   /swipe                              204
	GET    /recommendations/{userId}           [{targetId, score}]
	GET    /compatibility?a=&b=                {score}
	GET    /compatibility/explain?a=&b=        {score, shared}
	POST   /conversation                       201 {sessionId, status, question}
	GET    /conversation/{sessionId}           session snapshot
	DELETE /conversation/{sessionId}           204
	POST   /conversation/{sessionId}/answer    {status, question}
	POST   /users                              201 user
	GET    /users/{userId}                     user
	DELETE /users/{userId}                     204
	GET    /users/{userId}/discovery           saved discovery settings
	PUT    /users/{userId}/discovery           saved discovery settings
	GET    /users/{userId}/preferences         preference vector
	POST   /users/{userId}/reset-ai            204
	GET    /users/{userId}/swipes              swipe history
	GET    /health, /health/live, /health/ready
	GET    /metrics                            Prometheus exposition
	GET    /swagger/*                          Swagger UI and doc.json

Handlers carry swag annotations; the docs package is generated from them.

Successful responses carry the resource itself. Errors use one envelope:

	{
	  "status": "error",
	  "error": {"code": "NOT_FOUND", "message": "...", "details": {...}},
	  "metadata": {"timestamp": "...", "requestId": "..."}
	}

Component errors are mapped by sentinel: models.ErrInvalidInput to 400,
ErrNotFound to 404, ErrConflict to 409 and ErrUnavailable to 503. Validator
failures become VALIDATION_ERROR with field details.

Middleware order: request ID, real IP, request logging, panic recovery,
Prometheus metrics, CORS, security headers, then per-group httprate
limits keyed by client IP.
*/
package api
