// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package conversation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tomtom215/lovesync/internal/config"
	"github.com/tomtom215/lovesync/internal/eventprocessor"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/preference"
)

// UserLookup resolves profiles. directory.Directory implements it.
type UserLookup interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// PreferenceUpdater applies deltas. preference.Store implements it.
type PreferenceUpdater interface {
	ApplyDelta(ctx context.Context, userID string, delta models.Delta, source preference.Source) (*models.PreferenceVector, error)
}

// Manager runs learning conversations. Sessions live in memory only and are
// evicted by Sweep after a period without activity.
type Manager struct {
	users     UserLookup
	prefs     PreferenceUpdater
	publisher eventprocessor.EventPublisher
	bank      *Bank
	logger    zerolog.Logger

	maxFollowUps int
	sessionTTL   time.Duration
	maxSessions  int

	mu       sync.RWMutex
	sessions map[string]*session

	now func() time.Time
}

// NewManager creates a manager over bank, or DefaultBank when bank is nil.
func NewManager(users UserLookup, prefs PreferenceUpdater, cfg config.ConversationConfig, bank *Bank, publisher eventprocessor.EventPublisher) (*Manager, error) {
	if bank == nil {
		bank = DefaultBank()
	}
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("invalid question bank: %w", err)
	}
	if cfg.MaxFollowUps < 0 {
		return nil, fmt.Errorf("max follow-ups must not be negative")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &Manager{
		users:        users,
		prefs:        prefs,
		publisher:    publisher,
		bank:         bank,
		logger:       logging.WithComponent("conversation"),
		maxFollowUps: cfg.MaxFollowUps,
		sessionTTL:   ttl,
		maxSessions:  cfg.MaxSessions,
		sessions:     make(map[string]*session),
		now:          time.Now,
	}, nil
}

// MaxSteps is the most answers any session can take to complete.
func (m *Manager) MaxSteps() int {
	followUps := m.maxFollowUps
	if followUps > len(m.bank.FollowUps) {
		followUps = len(m.bank.FollowUps)
	}
	return len(m.bank.Questions) + followUps
}

// Start opens a session for userID and returns its first question.
// Starting a session never resets preferences.
func (m *Manager) Start(ctx context.Context, userID string) (*Step, error) {
	if _, err := m.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	now := m.now().UTC()
	s := &session{
		id:            uuid.New().String(),
		userID:        userID,
		createdAt:     now,
		updatedAt:     now,
		state:         StateIdle,
		queue:         m.bank.order(),
		followUpsSeen: make(map[string]struct{}),
	}

	s.mu.Lock()
	m.advance(s)
	step := s.step()
	s.mu.Unlock()

	m.mu.Lock()
	if m.atCapacity() {
		m.mu.Unlock()
		m.Sweep()
		m.mu.Lock()
		// Another Start may have taken the freed slots.
		if m.atCapacity() {
			m.mu.Unlock()
			return nil, fmt.Errorf("%w: too many active conversations", models.ErrUnavailable)
		}
	}
	m.sessions[s.id] = s
	m.mu.Unlock()

	metrics.RecordSessionEvent("started")
	logging.Ctx(ctx).Info().
		Str("session_id", s.id).
		Str("user_id", userID).
		Msg("Conversation started")
	return step, nil
}

// Answer classifies text against the pending question, feeds the signal to
// the preference store and moves to the next question.
//
// Errors: ErrNotFound for an unknown or evicted session, ErrConflict when the
// session is completed or another answer is being classified, and
// ErrInvalidInput when text does not fit the question.
func (m *Manager) Answer(ctx context.Context, sessionID, text string) (*Step, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	switch s.state {
	case StateCompleted:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: session %s is completed", models.ErrConflict, sessionID)
	case StateClassifying:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: session %s is processing another answer", models.ErrConflict, sessionID)
	}
	q := s.pending
	delta, canonical, err := Classify(q, text)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.state = StateClassifying
	s.mu.Unlock()

	if !delta.Empty() {
		if _, err := m.prefs.ApplyDelta(ctx, s.userID, delta, preference.SourceConversation); err != nil {
			s.mu.Lock()
			s.state = StateAwaitingAnswer
			s.mu.Unlock()
			return nil, fmt.Errorf("apply answer: %w", err)
		}
	}

	s.mu.Lock()
	now := m.now().UTC()
	s.turns = append(s.turns, Turn{
		QuestionID: q.ID,
		Question:   q.Text,
		Answer:     canonical,
		Signal:     delta,
		AnsweredAt: now,
	})
	s.updatedAt = now
	if q.Kind == KindText && delta.Empty() {
		m.queueFollowUp(s)
	}
	m.advance(s)
	step := s.step()
	s.mu.Unlock()

	completed := step.Status == StateCompleted
	metrics.RecordConversationAnswer(string(q.Kind))
	if completed {
		metrics.RecordSessionEvent("completed")
	}
	eventprocessor.Emit(ctx, m.publisher, eventprocessor.TopicConversationAnswered, s.userID, eventprocessor.ConversationAnswered{
		SessionID:  s.id,
		QuestionID: q.ID,
		Signal:     !delta.Empty(),
		Completed:  completed,
	})

	logging.Ctx(ctx).Debug().
		Str("session_id", s.id).
		Str("question_id", q.ID).
		Int("signal_keys", len(delta)).
		Str("status", string(step.Status)).
		Msg("Answer processed")

	return step, nil
}

// End completes the session at the user's request. Ending a completed
// session is a no-op.
func (m *Manager) End(ctx context.Context, sessionID string) (*Session, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClassifying {
		return nil, fmt.Errorf("%w: session %s is processing an answer", models.ErrConflict, sessionID)
	}
	if s.state != StateCompleted {
		s.state = StateCompleted
		s.pending = nil
		s.queue = nil
		s.updatedAt = m.now().UTC()
		metrics.RecordSessionEvent("ended")
		logging.Ctx(ctx).Info().Str("session_id", sessionID).Msg("Conversation ended by user")
	}
	return s.snapshot(), nil
}

// Get returns a snapshot of the session.
func (m *Manager) Get(_ context.Context, sessionID string) (*Session, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// Sweep evicts sessions idle for longer than the session TTL and returns
// how many were removed. Sessions in the middle of classification are kept.
func (m *Manager) Sweep() int {
	cutoff := m.now().UTC().Add(-m.sessionTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if !s.mu.TryLock() {
			continue
		}
		stale := s.state != StateClassifying && s.updatedAt.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			evicted++
			metrics.RecordSessionEvent("evicted")
		}
	}
	if evicted > 0 {
		m.logger.Debug().Int("evicted", evicted).Int("remaining", len(m.sessions)).Msg("Swept idle conversations")
	}
	return evicted
}

// ForgetUser drops every session owned by userID.
func (m *Manager) ForgetUser(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.userID == userID {
			delete(m.sessions, id)
			removed++
			metrics.RecordSessionEvent("deleted")
		}
	}
	return removed
}

// Count returns the number of sessions held in memory.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// atCapacity reports whether the session table is full. Callers hold m.mu.
func (m *Manager) atCapacity() bool {
	return m.maxSessions > 0 && len(m.sessions) >= m.maxSessions
}

func (m *Manager) lookup(sessionID string) (*session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session %s", models.ErrNotFound, sessionID)
	}
	return s, nil
}

// queueFollowUp puts the next unused follow-up at the head of the queue
// while the session's follow-up budget lasts. Caller holds s.mu.
func (m *Manager) queueFollowUp(s *session) {
	if s.followUpsUsed >= m.maxFollowUps {
		return
	}
	for _, q := range m.bank.FollowUps {
		if _, seen := s.followUpsSeen[q.ID]; seen {
			continue
		}
		s.followUpsSeen[q.ID] = struct{}{}
		s.followUpsUsed++
		s.queue = append([]string{q.ID}, s.queue...)
		return
	}
}

// advance pops the next question or completes the session. Caller holds s.mu.
func (m *Manager) advance(s *session) {
	for len(s.queue) > 0 {
		id := s.queue[0]
		s.queue = s.queue[1:]
		if q, ok := m.bank.find(id); ok {
			s.pending = q
			s.state = StateAwaitingAnswer
			return
		}
	}
	s.pending = nil
	s.state = StateCompleted
}
