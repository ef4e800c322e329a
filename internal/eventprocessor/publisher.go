// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
)

// Metadata keys set on every published message.
const (
	MetadataUserID        = "user_id"
	MetadataCorrelationID = "correlation_id"
)

// EventPublisher is what domain services depend on to emit events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event *Event) error
}

// Publisher wraps a Watermill publisher with circuit breaker protection.
type Publisher struct {
	publisher      message.Publisher
	circuitBreaker *gobreaker.CircuitBreaker[interface{}]
	mu             sync.RWMutex
	closed         bool
}

// NewPublisher wraps pub. cb may be nil.
func NewPublisher(pub message.Publisher, cb *gobreaker.CircuitBreaker[interface{}]) (*Publisher, error) {
	if pub == nil {
		return nil, ErrNilPublisher
	}
	return &Publisher{publisher: pub, circuitBreaker: cb}, nil
}

// Publish sends msg to topic through the breaker.
func (p *Publisher) Publish(ctx context.Context, topic string, msg *message.Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg.SetContext(ctx)

	var err error
	if p.circuitBreaker != nil {
		_, err = p.circuitBreaker.Execute(func() (interface{}, error) {
			return nil, p.publisher.Publish(topic, msg)
		})
	} else {
		err = p.publisher.Publish(topic, msg)
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	metrics.RecordEventPublished(topic)
	return nil
}

// PublishEvent serializes and publishes an event on its topic.
func (p *Publisher) PublishEvent(ctx context.Context, event *Event) error {
	if event.CorrelationID == "" {
		event.CorrelationID = logging.CorrelationIDFromContext(ctx)
	}

	data, err := SerializeEvent(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set(MetadataUserID, event.UserID)
	if event.CorrelationID != "" {
		msg.Metadata.Set(MetadataCorrelationID, event.CorrelationID)
	}

	return p.Publish(ctx, event.Topic, msg)
}

// Close stops accepting events. The underlying publisher is owned by the Bus.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Emit builds and publishes an event, logging failures instead of returning them.
func Emit(ctx context.Context, pub EventPublisher, topic, userID string, payload any) {
	if pub == nil {
		return
	}
	event, err := NewEvent(topic, userID, payload)
	if err == nil {
		err = pub.PublishEvent(ctx, event)
	}
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("topic", topic).
			Str("user_id", userID).
			Msg("Failed to publish event")
	}
}
