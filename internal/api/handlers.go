// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import (
	"context"
	"time"

	"github.com/tomtom215/lovesync/internal/compat"
	"github.com/tomtom215/lovesync/internal/conversation"
	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/recommend"
	"github.com/tomtom215/lovesync/internal/swipe"
)

// UserService manages profiles. directory.Directory implements it.
type UserService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
	SetDiscovery(ctx context.Context, id string, settings *models.Discovery) (*models.User, error)
	Size() int
}

// SwipeService ingests swipes. swipe.Service implements it.
type SwipeService interface {
	Ingest(ctx context.Context, req swipe.Request) (swipe.Outcome, error)
	History(ctx context.Context, userID string) ([]*models.SwipeEvent, error)
}

// PreferenceService reads and resets preference vectors. preference.Store
// implements it.
type PreferenceService interface {
	Get(ctx context.Context, userID string) (*models.PreferenceVector, error)
	Reset(ctx context.Context, userID string) (*models.PreferenceVector, error)
}

// Ranker produces recommendations. recommend.Engine implements it.
type Ranker interface {
	Rank(ctx context.Context, userID string, c recommend.Constraints) ([]recommend.Recommendation, error)
	GetMetrics() recommend.Metrics
}

// CompatibilityService scores user pairs. compat.Service implements it.
type CompatibilityService interface {
	Compatibility(ctx context.Context, a, b string) (float64, error)
	Explain(ctx context.Context, a, b string, limit int) (*compat.Explanation, error)
}

// ConversationService runs learning conversations. conversation.Manager
// implements it.
type ConversationService interface {
	Start(ctx context.Context, userID string) (*conversation.Step, error)
	Answer(ctx context.Context, sessionID, text string) (*conversation.Step, error)
	End(ctx context.Context, sessionID string) (*conversation.Session, error)
	Get(ctx context.Context, sessionID string) (*conversation.Session, error)
	Count() int
}

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Services bundles the handler dependencies.
type Services struct {
	Users         UserService
	Swipes        SwipeService
	Preferences   PreferenceService
	Ranker        Ranker
	Compatibility CompatibilityService
	Conversations ConversationService

	// Readiness checks run by /health/ready, keyed by component name.
	Readiness map[string]ReadinessCheck
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_users.go: profiles, discovery settings, preferences and swipe history
//   - handlers_swipe.go: swipe ingestion
//   - handlers_recommend.go: ranking
//   - handlers_compat.go: pairwise compatibility
//   - handlers_conversation.go: learning conversations
//   - handlers_health.go: health checks and runtime stats
type Handler struct {
	users         UserService
	swipes        SwipeService
	prefs         PreferenceService
	ranker        Ranker
	compat        CompatibilityService
	conversations ConversationService
	readiness     map[string]ReadinessCheck
	startTime     time.Time
}

// NewHandler creates a handler over svc.
func NewHandler(svc Services) *Handler {
	return &Handler{
		users:         svc.Users,
		swipes:        svc.Swipes,
		prefs:         svc.Preferences,
		ranker:        svc.Ranker,
		compat:        svc.Compatibility,
		conversations: svc.Conversations,
		readiness:     svc.Readiness,
		startTime:     time.Now(),
	}
}
