// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
	"github.com/tomtom215/lovesync/internal/models"
)

// ActivityRecorder records that a user was active at a point in time.
// Implementations must be idempotent: the router may redeliver.
type ActivityRecorder interface {
	Touch(ctx context.Context, userID string, at time.Time) error
}

// ActivityHandler keeps users' lastActiveAt current from every domain event
// they cause. The ranker uses lastActiveAt to break score ties.
type ActivityHandler struct {
	recorder ActivityRecorder
	logger   zerolog.Logger

	received  atomic.Int64
	processed atomic.Int64
	skipped   atomic.Int64
}

// ActivityStats is a snapshot of handler counters.
type ActivityStats struct {
	Received  int64 `json:"received"`
	Processed int64 `json:"processed"`
	Skipped   int64 `json:"skipped"`
}

// NewActivityHandler creates a handler writing to recorder.
func NewActivityHandler(recorder ActivityRecorder) (*ActivityHandler, error) {
	if recorder == nil {
		return nil, fmt.Errorf("activity recorder required")
	}
	return &ActivityHandler{
		recorder: recorder,
		logger:   logging.WithComponent("activity-handler"),
	}, nil
}

// Handle processes one message. Malformed events and deleted users are
// acknowledged and skipped; any other recorder error is returned so the
// router retries.
func (h *ActivityHandler) Handle(msg *message.Message) error {
	h.received.Add(1)

	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		h.skipped.Add(1)
		h.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping malformed event")
		return nil
	}

	ctx := msg.Context()
	if event.CorrelationID != "" {
		ctx = logging.ContextWithCorrelationID(ctx, event.CorrelationID)
	}

	if err := h.recorder.Touch(ctx, event.UserID, event.OccurredAt); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.skipped.Add(1)
			return nil
		}
		return fmt.Errorf("touch user %s: %w", event.UserID, err)
	}

	h.processed.Add(1)
	h.logger.Debug().
		Str("topic", event.Topic).
		Str("user_id", event.UserID).
		Msg("Recorded activity")
	return nil
}

// Stats returns current counters.
func (h *ActivityHandler) Stats() ActivityStats {
	return ActivityStats{
		Received:  h.received.Load(),
		Processed: h.processed.Load(),
		Skipped:   h.skipped.Load(),
	}
}

// RegisterActivityHandlers subscribes h to every domain topic.
func RegisterActivityHandlers(r *Router, sub message.Subscriber, h *ActivityHandler) {
	for _, topic := range Topics {
		name := "activity." + topic
		r.AddConsumerHandler(name, topic, sub, instrument(name, h.Handle))
	}
}

func instrument(name string, fn message.NoPublishHandlerFunc) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		err := fn(msg)
		metrics.RecordEventHandled(name, err)
		return err
	}
}
