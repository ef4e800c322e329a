// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

// Package logging provides centralized zerolog-based structured logging for LoveSync.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", ":8080").Msg("HTTP server listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("ranking failed")
//
// Components receive a zerolog.Logger by value and derive their own child:
//
//	logger = logger.With().Str("component", "swipe").Logger()
//
// # Configuration
//
// Environment variables (mapped by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json or console (default: json)
//	LOG_CALLER  - include file:line (default: false)
//
// # Context
//
// The HTTP layer stores the request ID in the request context; the event bus
// stores a correlation ID on every published message. Ctx(ctx) attaches both
// fields when present.
//
// # slog
//
// NewSlogLogger adapts the global logger to *slog.Logger for libraries that
// only speak slog (suture via sutureslog, Watermill via NewSlogLogger).
//
// Always terminate an event with Msg or Send, otherwise nothing is written.
package logging
