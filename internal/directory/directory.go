// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package directory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tomtom215/lovesync/internal/cache"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/preference"
	"github.com/tomtom215/lovesync/internal/validation"
)

// Repository is the profile persistence. storage.Store implements it.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User, pref *models.PreferenceVector) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	TouchUser(ctx context.Context, id string, at time.Time) (*models.User, error)
	UpdateUser(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// GeoQuery restricts candidates to a radius around a point.
type GeoQuery struct {
	Lat      float64
	Lon      float64
	RadiusKm float64
}

// Directory owns user profiles and the candidate pool. Profiles are held in
// memory for candidate scans and written through to the repository.
type Directory struct {
	repo   Repository
	grid   *cache.SpatialGrid
	logger zerolog.Logger

	mu    sync.RWMutex
	users map[string]*models.User

	poolVersion atomic.Uint64

	hooksMu  sync.RWMutex
	onDelete []func(userID string)

	now func() time.Time
}

// New creates a directory. Call Load before serving.
func New(repo Repository, spatialCellKm float64) *Directory {
	return &Directory{
		repo:   repo,
		grid:   cache.NewSpatialGrid(spatialCellKm),
		logger: logging.WithComponent("directory"),
		users:  make(map[string]*models.User),
		now:    time.Now,
	}
}

// Load rebuilds the in-memory pool and spatial index from the repository.
func (d *Directory) Load(ctx context.Context) error {
	users, err := d.repo.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	d.mu.Lock()
	d.users = make(map[string]*models.User, len(users))
	d.grid.Clear()
	for _, u := range users {
		d.users[u.ID] = u
		d.grid.Insert(u.ID, u.Location.Lat, u.Location.Lon)
	}
	n := len(d.users)
	d.mu.Unlock()

	d.poolVersion.Add(1)
	metrics.CandidatePoolSize.Set(float64(n))
	d.logger.Info().Int("users", n).Msg("Candidate pool loaded")
	return nil
}

// OnDelete registers a hook run after a user is deleted.
func (d *Directory) OnDelete(hook func(userID string)) {
	d.hooksMu.Lock()
	d.onDelete = append(d.onDelete, hook)
	d.hooksMu.Unlock()
}

// Create validates and stores a new user, seeding its preference vector from
// the profile's attributes, or its declared interests when none are given. An ID is generated when absent.
func (d *Directory) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u := user.Clone()
	if err := validation.ValidateStruct(u); err != nil {
		return nil, err
	}
	if err := u.Discovery.Validate(); err != nil {
		return nil, err
	}
	if u.Discovery.IsZero() {
		u.Discovery = nil
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := d.now().UTC()
	u.CreatedAt = now
	u.LastActiveAt = now

	pref := &models.PreferenceVector{
		UserID:    u.ID,
		Weights:   preference.SeedWeights(u),
		UpdatedAt: now,
	}
	if err := d.repo.CreateUser(ctx, u, pref); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	d.mu.Lock()
	d.users[u.ID] = u
	n := len(d.users)
	d.mu.Unlock()
	d.grid.Insert(u.ID, u.Location.Lat, u.Location.Lon)
	d.poolVersion.Add(1)
	metrics.CandidatePoolSize.Set(float64(n))

	d.logger.Info().Str("user_id", u.ID).Int("interests", len(u.Interests)).Msg("User created")
	return u.Clone(), nil
}

// Get returns a copy of the profile.
func (d *Directory) Get(_ context.Context, id string) (*models.User, error) {
	d.mu.RLock()
	u, ok := d.users[id]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
	}
	return u.Clone(), nil
}

// Exists reports whether id is a registered user.
func (d *Directory) Exists(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.users[id]
	return ok
}

// Delete removes the user with their preference vector and swipe log.
func (d *Directory) Delete(ctx context.Context, id string) error {
	if err := d.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	d.mu.Lock()
	delete(d.users, id)
	n := len(d.users)
	d.mu.Unlock()
	d.grid.Remove(id)
	d.poolVersion.Add(1)
	metrics.CandidatePoolSize.Set(float64(n))

	d.hooksMu.RLock()
	hooks := d.onDelete
	d.hooksMu.RUnlock()
	for _, hook := range hooks {
		hook(id)
	}

	d.logger.Info().Str("user_id", id).Msg("User deleted")
	return nil
}

// SetDiscovery saves the user's default ranking filters. A nil or empty
// value clears them. The pool version is unchanged: the filters only shape
// this user's own requests.
func (d *Directory) SetDiscovery(ctx context.Context, id string, settings *models.Discovery) (*models.User, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	saved := settings.Clone()
	if saved.IsZero() {
		saved = nil
	}

	updated, err := d.repo.UpdateUser(ctx, id, func(u *models.User) error {
		u.Discovery = saved
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save discovery settings: %w", err)
	}

	d.mu.Lock()
	if u, ok := d.users[id]; ok {
		c := u.Clone()
		c.Discovery = saved.Clone()
		d.users[id] = c
	}
	d.mu.Unlock()

	d.logger.Debug().Str("user_id", id).Bool("cleared", saved == nil).Msg("Discovery settings saved")
	return updated.Clone(), nil
}

// Touch advances the user's lastActiveAt. Older timestamps are ignored.
// It does not change the pool version.
func (d *Directory) Touch(ctx context.Context, id string, at time.Time) error {
	updated, err := d.repo.TouchUser(ctx, id, at.UTC())
	if err != nil {
		return err
	}

	d.mu.Lock()
	if u, ok := d.users[id]; ok && updated.LastActiveAt.After(u.LastActiveAt) {
		c := u.Clone()
		c.LastActiveAt = updated.LastActiveAt
		d.users[id] = c
	}
	d.mu.Unlock()
	return nil
}

// Candidates returns copies of every user except forUser, ordered by ID.
// With near set, only users within the radius are returned.
func (d *Directory) Candidates(_ context.Context, forUser string, near *GeoQuery) []*models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*models.User
	if near != nil {
		for _, id := range d.grid.Within(near.Lat, near.Lon, near.RadiusKm) {
			if u, ok := d.users[id]; ok && id != forUser {
				out = append(out, u.Clone())
			}
		}
	} else {
		out = make([]*models.User, 0, len(d.users))
		for id, u := range d.users {
			if id != forUser {
				out = append(out, u.Clone())
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PoolVersion changes whenever a user joins or leaves.
func (d *Directory) PoolVersion() uint64 {
	return d.poolVersion.Load()
}

// Size returns the number of registered users.
func (d *Directory) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
