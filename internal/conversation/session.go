// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package conversation

import (
	"sync"
	"time"

	"github.com/tomtom215/lovesync/internal/models"
)

// State is a session's position in the conversation.
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingAnswer State = "awaiting_answer"
	StateClassifying    State = "classifying"
	StateCompleted      State = "completed"
)

// Turn is one answered question.
type Turn struct {
	QuestionID string       `json:"questionId"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Signal     models.Delta `json:"signal,omitempty"`
	AnsweredAt time.Time    `json:"answeredAt"`
}

// Session is a read-only snapshot of a conversation.
type Session struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	State         State     `json:"state"`
	Pending       *Question `json:"pending,omitempty"`
	Turns         []Turn    `json:"turns"`
	FollowUpsUsed int       `json:"followUpsUsed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Step is the outcome of Start or Answer.
type Step struct {
	SessionID string    `json:"sessionId"`
	Status    State     `json:"status"`
	Question  *Question `json:"question,omitempty"`
}

// session is the mutable state behind a Session. mu guards every field
// except the immutable id, userID and createdAt.
type session struct {
	mu sync.Mutex

	id        string
	userID    string
	createdAt time.Time

	state     State
	updatedAt time.Time
	pending   *Question
	turns     []Turn

	// queue holds bank question IDs still to ask, in order.
	queue         []string
	followUpsUsed int
	followUpsSeen map[string]struct{}
}

// snapshot copies the session. Caller holds mu.
func (s *session) snapshot() *Session {
	out := &Session{
		ID:            s.id,
		UserID:        s.userID,
		State:         s.state,
		Turns:         make([]Turn, len(s.turns)),
		FollowUpsUsed: s.followUpsUsed,
		CreatedAt:     s.createdAt,
		UpdatedAt:     s.updatedAt,
	}
	for i, t := range s.turns {
		t.Signal = copyDelta(t.Signal)
		out.Turns[i] = t
	}
	if s.pending != nil {
		q := *s.pending
		out.Pending = &q
	}
	return out
}

// step reports the current position. Caller holds mu.
func (s *session) step() *Step {
	st := &Step{SessionID: s.id, Status: s.state}
	if s.state == StateAwaitingAnswer && s.pending != nil {
		q := *s.pending
		st.Question = &q
	}
	return st
}
