// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import (
	"errors"
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent(TopicSwipeRecorded, "u1", SwipeRecorded{
		TargetID:  "u2",
		Direction: "like",
		Outcome:   "applied",
	})
	if err != nil {
		t.Fatalf("NewEvent() error = %v", err)
	}

	if event.EventID == "" {
		t.Error("EventID not set")
	}
	if event.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", event.SchemaVersion, SchemaVersion)
	}

	var payload SwipeRecorded
	if err := event.DecodePayload(&payload); err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}
	if payload.TargetID != "u2" || payload.Direction != "like" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestEvent_Validate(t *testing.T) {
	valid := func() *Event {
		return &Event{EventID: "e1", Topic: TopicPreferenceUpdated, UserID: "u1", OccurredAt: time.Now()}
	}

	tests := []struct {
		name   string
		mutate func(*Event)
		ok     bool
	}{
		{"valid", func(*Event) {}, true},
		{"missing id", func(e *Event) { e.EventID = "" }, false},
		{"missing topic", func(e *Event) { e.Topic = "" }, false},
		{"missing user", func(e *Event) { e.UserID = "" }, false},
		{"missing time", func(e *Event) { e.OccurredAt = time.Time{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(e)
			err := e.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("Validate() error = %v, want ErrInvalidEvent", err)
			}
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	event, err := NewEvent(TopicConversationAnswered, "u1", ConversationAnswered{SessionID: "s1", Signal: true})
	if err != nil {
		t.Fatal(err)
	}
	event.CorrelationID = "abcd1234"

	data, err := SerializeEvent(event)
	if err != nil {
		t.Fatalf("SerializeEvent() error = %v", err)
	}
	got, err := DeserializeEvent(data)
	if err != nil {
		t.Fatalf("DeserializeEvent() error = %v", err)
	}

	if got.EventID != event.EventID || got.CorrelationID != "abcd1234" || !got.OccurredAt.Equal(event.OccurredAt) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestDeserializeEvent_Invalid(t *testing.T) {
	if _, err := DeserializeEvent([]byte("not json")); err == nil {
		t.Error("expected error for malformed json")
	}
	if _, err := DeserializeEvent([]byte(`{"event_id":"e1"}`)); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("expected ErrInvalidEvent, got %v", err)
	}
}
