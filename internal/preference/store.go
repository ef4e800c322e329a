// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package preference

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/lovesync/internal/config"
	"github.com/tomtom215/lovesync/internal/eventprocessor"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
	"github.com/tomtom215/lovesync/internal/models"
)

// Source labels where a preference mutation came from.
type Source string

const (
	SourceSwipe        Source = "swipe"
	SourceConversation Source = "conversation"
	SourceReset        Source = "reset"
)

// Repository is the persistence the store needs. storage.Store implements it.
type Repository interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetPreference(ctx context.Context, userID string) (*models.PreferenceVector, error)
	UpdatePreference(ctx context.Context, userID string, fn func(*models.PreferenceVector) error) (*models.PreferenceVector, error)
}

// InvalidationHook is called synchronously after every committed mutation.
type InvalidationHook func(userID string)

// Store owns every user's preference vector. Updates for one user are
// serialized; different users never contend.
type Store struct {
	repo      Repository
	alpha     float64
	publisher eventprocessor.EventPublisher
	logger    zerolog.Logger

	userLocks sync.Map // userID -> *sync.Mutex

	hooksMu sync.RWMutex
	hooks   []InvalidationHook

	now func() time.Time
}

// NewStore creates a store. publisher may be nil.
func NewStore(repo Repository, cfg config.PreferenceConfig, publisher eventprocessor.EventPublisher) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("preference repository required")
	}
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must be in (0,1], got %v", models.ErrInvalidInput, cfg.Alpha)
	}
	return &Store{
		repo:      repo,
		alpha:     cfg.Alpha,
		publisher: publisher,
		logger:    logging.WithComponent("preference"),
		now:       time.Now,
	}, nil
}

// Alpha returns the decay factor.
func (s *Store) Alpha() float64 {
	return s.alpha
}

// OnUpdate registers a hook run after each mutation, before the mutating
// call returns.
func (s *Store) OnUpdate(hook InvalidationHook) {
	s.hooksMu.Lock()
	s.hooks = append(s.hooks, hook)
	s.hooksMu.Unlock()
}

// Get returns a copy of the user's vector.
func (s *Store) Get(ctx context.Context, userID string) (*models.PreferenceVector, error) {
	vec, err := s.repo.GetPreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences for %s: %w", userID, err)
	}
	return vec, nil
}

// ApplyDelta merges delta into the user's vector with exponential decay.
// An empty delta is a no-op and returns the current vector.
func (s *Store) ApplyDelta(ctx context.Context, userID string, delta models.Delta, source Source) (*models.PreferenceVector, error) {
	if delta.Empty() {
		return s.Get(ctx, userID)
	}

	return s.mutate(ctx, userID, source, func(v *models.PreferenceVector) error {
		v.Weights = Merge(v.Weights, delta, s.alpha)
		return nil
	})
}

// Reset replaces the learned vector with the seed derived from the user's
// profile (see SeedWeights). It is the only operation that discards learned state.
func (s *Store) Reset(ctx context.Context, userID string) (*models.PreferenceVector, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reset preferences for %s: %w", userID, err)
	}
	seed := SeedWeights(user)

	return s.mutate(ctx, userID, SourceReset, func(v *models.PreferenceVector) error {
		v.Weights = seed
		return nil
	})
}

// Forget drops the per-user lock after the user is deleted.
func (s *Store) Forget(userID string) {
	s.userLocks.Delete(userID)
}

func (s *Store) mutate(ctx context.Context, userID string, source Source, fn func(*models.PreferenceVector) error) (*models.PreferenceVector, error) {
	start := time.Now()

	mu := s.acquireUserLock(userID)
	vec, err := s.repo.UpdatePreference(ctx, userID, func(v *models.PreferenceVector) error {
		if err := fn(v); err != nil {
			return err
		}
		v.Version++
		v.UpdatedAt = s.now().UTC()
		return nil
	})
	mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("update preferences for %s: %w", userID, err)
	}

	metrics.RecordPreferenceUpdate(string(source), time.Since(start))
	s.runHooks(userID)

	eventprocessor.Emit(ctx, s.publisher, eventprocessor.TopicPreferenceUpdated, userID, eventprocessor.PreferenceUpdated{
		Version: vec.Version,
		Source:  string(source),
		Keys:    len(vec.Weights),
	})

	s.logger.Debug().
		Str("user_id", userID).
		Str("source", string(source)).
		Uint64("version", vec.Version).
		Int("keys", len(vec.Weights)).
		Msg("Preferences updated")

	return vec, nil
}

func (s *Store) acquireUserLock(userID string) *sync.Mutex {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

func (s *Store) runHooks(userID string) {
	s.hooksMu.RLock()
	hooks := s.hooks
	s.hooksMu.RUnlock()

	for _, hook := range hooks {
		hook(userID)
	}
}
