// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// SchemaVersion is the current event envelope version.
const SchemaVersion = 1

// Topics published on the in-process bus.
const (
	TopicSwipeRecorded        = "swipe.recorded"
	TopicPreferenceUpdated    = "preference.updated"
	TopicConversationAnswered = "conversation.answered"
)

// Topics lists every topic, in registration order.
var Topics = []string{TopicSwipeRecorded, TopicPreferenceUpdated, TopicConversationAnswered}

// Event is the envelope for every domain event. Payload holds one of the
// typed payloads below, encoded as JSON.
type Event struct {
	SchemaVersion int             `json:"schema_version"`
	EventID       string          `json:"event_id"`
	Topic         string          `json:"topic"`
	UserID        string          `json:"user_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// SwipeRecorded is published after a swipe has been applied or overwritten.
type SwipeRecorded struct {
	TargetID  string `json:"target_id"`
	Direction string `json:"direction"`
	Outcome   string `json:"outcome"`
}

// PreferenceUpdated is published after any preference mutation.
type PreferenceUpdated struct {
	Version uint64 `json:"version"`
	Source  string `json:"source"`
	Keys    int    `json:"keys"`
}

// ConversationAnswered is published after an answer has been classified.
type ConversationAnswered struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	Signal     bool   `json:"signal"`
	Completed  bool   `json:"completed"`
}

// NewEvent builds an envelope for userID with payload encoded into it.
func NewEvent(topic, userID string, payload any) (*Event, error) {
	e := &Event{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		Topic:         topic,
		UserID:        userID,
		OccurredAt:    time.Now().UTC(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", topic, err)
		}
		e.Payload = data
	}
	return e, e.Validate()
}

// Validate checks required envelope fields.
func (e *Event) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	}
	if e.Topic == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidEvent)
	}
	if e.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidEvent)
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", ErrInvalidEvent)
	}
	return nil
}

// DecodePayload unmarshals the payload into v.
func (e *Event) DecodePayload(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidEvent)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", e.Topic, err)
	}
	return nil
}
