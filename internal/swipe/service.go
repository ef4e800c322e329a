// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package swipe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/lovesync/internal/cache"
	"github.com/tomtom215/lovesync/internal/config"
	"github.com/tomtom215/lovesync/internal/eventprocessor"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/preference"
	"github.com/tomtom215/lovesync/internal/validation"
)

// Outcome describes what an ingested swipe did.
type Outcome string

const (
	// OutcomeApplied is a first swipe on the target.
	OutcomeApplied Outcome = "applied"
	// OutcomeDuplicate repeats the recorded direction and changes nothing.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeOverwritten reverses an earlier decision.
	OutcomeOverwritten Outcome = "overwritten"
)

// Request is an incoming swipe.
type Request struct {
	UserID    string    `json:"userId" validate:"required,entityid"`
	TargetID  string    `json:"targetId" validate:"required,entityid,nefield=UserID"`
	Direction string    `json:"direction" validate:"required"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Repository is the swipe log. storage.Store implements it.
type Repository interface {
	GetSwipe(ctx context.Context, userID, targetID string) (*models.SwipeEvent, error)
	PutSwipe(ctx context.Context, ev *models.SwipeEvent) error
	DeleteSwipe(ctx context.Context, userID, targetID string) error
	ListSwipes(ctx context.Context, userID string) ([]*models.SwipeEvent, error)
	SwipedTargets(ctx context.Context, userID string) (map[string]struct{}, error)
}

// UserLookup resolves profiles. directory.Directory implements it.
type UserLookup interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// PreferenceUpdater applies deltas. preference.Store implements it.
type PreferenceUpdater interface {
	ApplyDelta(ctx context.Context, userID string, delta models.Delta, source preference.Source) (*models.PreferenceVector, error)
}

// Service ingests swipes. Ingestion for one swiper is serialized so that
// concurrent duplicates apply at most once.
type Service struct {
	repo      Repository
	users     UserLookup
	prefs     PreferenceUpdater
	publisher eventprocessor.EventPublisher
	recent    *cache.WindowStore
	logger    zerolog.Logger

	userLocks sync.Map // userID -> *sync.Mutex

	hooksMu sync.RWMutex
	hooks   []func(userID string)

	now func() time.Time
}

// NewService creates a swipe service. publisher may be nil.
func NewService(repo Repository, users UserLookup, prefs PreferenceUpdater, cfg config.SwipeConfig, publisher eventprocessor.EventPublisher) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		prefs:     prefs,
		publisher: publisher,
		recent:    cache.NewWindowStore(cfg.RecentWindow, cfg.RecentBuckets, cfg.MaxTrackedUsers),
		logger:    logging.WithComponent("swipe"),
		now:       time.Now,
	}
}

// OnRecorded registers a hook run after a swipe changes userID's log.
func (s *Service) OnRecorded(hook func(userID string)) {
	s.hooksMu.Lock()
	s.hooks = append(s.hooks, hook)
	s.hooksMu.Unlock()
}

// Ingest records a swipe and feeds the target's attributes into the
// swiper's preference vector. Repeating the recorded direction is a no-op.
// A reversed direction replaces the record and applies the new delta once.
func (s *Service) Ingest(ctx context.Context, req Request) (Outcome, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return "", err
	}
	direction, err := models.ParseDirection(req.Direction)
	if err != nil {
		return "", err
	}

	if _, err := s.users.Get(ctx, req.UserID); err != nil {
		return "", fmt.Errorf("swiper: %w", err)
	}
	target, err := s.users.Get(ctx, req.TargetID)
	if err != nil {
		return "", fmt.Errorf("target: %w", err)
	}

	mu := s.acquireUserLock(req.UserID)
	defer mu.Unlock()

	previous, err := s.repo.GetSwipe(ctx, req.UserID, req.TargetID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return "", fmt.Errorf("load swipe: %w", err)
	}

	outcome := OutcomeApplied
	if previous != nil {
		if previous.Direction == direction {
			metrics.RecordSwipe(string(direction), string(OutcomeDuplicate))
			return OutcomeDuplicate, nil
		}
		outcome = OutcomeOverwritten
	}

	at := req.Timestamp
	if at.IsZero() {
		at = s.now()
	}
	ev := &models.SwipeEvent{
		UserID:    req.UserID,
		TargetID:  req.TargetID,
		Direction: direction,
		Timestamp: at.UTC(),
	}

	// Record first; restore on a failed update.
	if err := s.repo.PutSwipe(ctx, ev); err != nil {
		return "", fmt.Errorf("record swipe: %w", err)
	}

	// The window counts only applied swipes, this one included.
	recentCount := s.recent.Count(req.UserID) + 1
	delta := Delta(target, direction, recentCount)

	if _, err := s.prefs.ApplyDelta(ctx, req.UserID, delta, preference.SourceSwipe); err != nil {
		s.restore(ctx, ev, previous)
		return "", err
	}
	s.recent.Increment(req.UserID)

	metrics.RecordSwipe(string(direction), string(outcome))
	s.runHooks(req.UserID)
	eventprocessor.Emit(ctx, s.publisher, eventprocessor.TopicSwipeRecorded, req.UserID, eventprocessor.SwipeRecorded{
		TargetID:  req.TargetID,
		Direction: string(direction),
		Outcome:   string(outcome),
	})

	logging.Ctx(ctx).Debug().
		Str("user_id", req.UserID).
		Str("target_id", req.TargetID).
		Str("direction", string(direction)).
		Str("outcome", string(outcome)).
		Int64("recent_count", recentCount).
		Msg("Swipe ingested")

	return outcome, nil
}

// History returns the user's swipe log, oldest first.
func (s *Service) History(ctx context.Context, userID string) ([]*models.SwipeEvent, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	events, err := s.repo.ListSwipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list swipes: %w", err)
	}
	if events == nil {
		events = []*models.SwipeEvent{}
	}
	return events, nil
}

// Swiped returns the set of targets the user has swiped on.
func (s *Service) Swiped(ctx context.Context, userID string) (map[string]struct{}, error) {
	return s.repo.SwipedTargets(ctx, userID)
}

// Forget drops in-memory state for a deleted user.
func (s *Service) Forget(userID string) {
	s.recent.Remove(userID)
	s.userLocks.Delete(userID)
}

// CleanupInactive drops recent-swipe counters that have gone quiet.
func (s *Service) CleanupInactive() int {
	return s.recent.CleanupInactive()
}

// Delta converts the target's attributes into a signed delta: +weight for a
// like, -weight for a pass, divided by the swiper's recent swipe count.
func Delta(target *models.User, direction models.Direction, recentCount int64) models.Delta {
	if recentCount < 1 {
		recentCount = 1
	}
	factor := direction.Sign() / float64(recentCount)
	return models.Delta(target.AttributeSet()).Scale(factor)
}

// restore puts the swipe log back the way it was after a failed update.
func (s *Service) restore(ctx context.Context, ev, previous *models.SwipeEvent) {
	var err error
	if previous != nil {
		err = s.repo.PutSwipe(context.WithoutCancel(ctx), previous)
	} else {
		err = s.repo.DeleteSwipe(context.WithoutCancel(ctx), ev.UserID, ev.TargetID)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", ev.UserID).
			Str("target_id", ev.TargetID).
			Msg("Failed to roll back swipe record")
	}
}

func (s *Service) runHooks(userID string) {
	s.hooksMu.RLock()
	defer s.hooksMu.RUnlock()
	for _, hook := range s.hooks {
		hook(userID)
	}
}

func (s *Service) acquireUserLock(userID string) *sync.Mutex {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}
