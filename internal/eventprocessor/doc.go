// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package eventprocessor carries domain events between LoveSync components over
an in-process Watermill pub/sub.

# Architecture

	swipe.Service ─┐
	preference.Store ──► Publisher (circuit breaker) ──► gochannel ──► Router ──► ActivityHandler ──► directory.Touch
	conversation.Manager ┘

Topics:
  - swipe.recorded: a swipe was applied or overwritten
  - preference.updated: a preference vector changed
  - conversation.answered: a conversation answer was classified

Every event is an Event envelope (schema version, event ID, user ID,
timestamp, correlation ID) with a typed JSON payload.

# Delivery

The bus is at-most-once and in-memory. Publishing never blocks the caller's
request on handlers, and publish failures are logged by Emit rather than
failing the domain operation. The router applies Recoverer then Retry with
exponential backoff; handlers must be idempotent.

# Usage

	bus, err := eventprocessor.NewBus(eventprocessor.ConfigFrom(cfg.Events))
	router, err := eventprocessor.NewRouter(cfg, bus.Logger())
	handler, err := eventprocessor.NewActivityHandler(directory)
	eventprocessor.RegisterActivityHandlers(router, bus.Subscriber(), handler)
	go router.Run(ctx)

	eventprocessor.Emit(ctx, bus.Publisher(), eventprocessor.TopicSwipeRecorded, userID, payload)
*/
package eventprocessor
