// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/tomtom215/lovesync/internal/logging"
)

// Bus is the in-process pub/sub shared by the publisher and the router.
// Delivery is at-most-once: events published while no handler is
// subscribed are dropped.
//
// Example usage:
//
//	bus, err := eventprocessor.NewBus(eventprocessor.ConfigFrom(cfg.Events))
//	if err != nil {
//	    return err
//	}
//	defer bus.Close()
//	swipes := swipe.NewService(store, users, prefs, cfg.Swipe, bus.Publisher())
type Bus struct {
	pubsub    *gochannel.GoChannel
	publisher *Publisher
	logger    watermill.LoggerAdapter
}

// NewBus creates the pubsub and a breaker-protected publisher over it.
func NewBus(cfg Config) (*Bus, error) {
	logger := watermill.NewSlogLogger(logging.NewSlogLogger("watermill"))

	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.OutputBuffer,
	}, logger)

	pub, err := NewPublisher(ps, NewCircuitBreaker(cfg.Breaker))
	if err != nil {
		return nil, err
	}

	return &Bus{pubsub: ps, publisher: pub, logger: logger}, nil
}

// Publisher returns the domain-facing publisher.
func (b *Bus) Publisher() *Publisher {
	return b.publisher
}

// Subscriber returns the Watermill subscriber for router handlers.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Logger returns the Watermill logger adapter.
func (b *Bus) Logger() watermill.LoggerAdapter {
	return b.logger
}

// Close stops the publisher and closes all subscriptions.
func (b *Bus) Close() error {
	_ = b.publisher.Close()
	return b.pubsub.Close()
}
