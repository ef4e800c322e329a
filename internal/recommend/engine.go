// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/lovesync/internal/cache"
	"github.com/tomtom215/lovesync/internal/compat"
	"github.com/tomtom215/lovesync/internal/directory"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
	"github.com/tomtom215/lovesync/internal/models"
)

// CandidateSource provides profiles and the candidate pool.
// directory.Directory implements it.
type CandidateSource interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Candidates(ctx context.Context, forUser string, near *directory.GeoQuery) []*models.User
	PoolVersion() uint64
}

// PreferenceReader loads preference vectors. preference.Store implements it.
type PreferenceReader interface {
	Get(ctx context.Context, userID string) (*models.PreferenceVector, error)
}

// SwipeLookup reports which targets a user has already swiped on.
// swipe.Service implements it.
type SwipeLookup interface {
	Swiped(ctx context.Context, userID string) (map[string]struct{}, error)
}

// Engine ranks candidates for a user. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	users  CandidateSource
	prefs  PreferenceReader
	swipes SwipeLookup

	// cache is nil when disabled. epoch is part of every key and moves on
	// each preference change, so entries built on an old vector are never read.
	cache *cache.LRU[[]Recommendation]
	epoch atomic.Uint64

	requestCount  atomic.Int64
	errorCount    atomic.Int64
	invalidations atomic.Int64
}

// NewEngine creates a ranking engine. swipes may be nil, in which case
// already-swiped targets are never excluded.
func NewEngine(cfg *Config, users CandidateSource, prefs PreferenceReader, swipes SwipeLookup) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg,
		logger: logging.WithComponent("recommend"),
		users:  users,
		prefs:  prefs,
		swipes: swipes,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[[]Recommendation](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Rank returns the user's candidates that pass the constraints, ordered by
// compatibility descending, then lastActiveAt descending, then target ID.
// An empty pool yields an empty slice, not an error.
func (e *Engine) Rank(ctx context.Context, userID string, c Constraints) ([]Recommendation, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.Limit = e.effectiveLimit(c.Limit)

	if e.config.Limits.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
		defer cancel()
	}

	user, err := e.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := e.cacheKey(userID, c)
	if recs, ok := e.checkCache(key); ok {
		return recs, nil
	}

	recs, candidates, err := e.rank(ctx, user, c)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	e.storeCache(key, recs)
	metrics.RecordRank(time.Since(start), candidates)

	logging.Ctx(ctx).Debug().
		Str("user_id", userID).
		Int("candidates", candidates).
		Int("returned", len(recs)).
		Dur("latency", time.Since(start)).
		Msg("Ranking complete")

	return copyRecommendations(recs), nil
}

func (e *Engine) rank(ctx context.Context, user *models.User, c Constraints) ([]Recommendation, int, error) {
	self, err := e.prefs.Get(ctx, user.ID)
	if err != nil {
		return nil, 0, err
	}

	candidates, err := e.getCandidates(ctx, user, c)
	if err != nil {
		return nil, 0, err
	}
	if len(candidates) == 0 {
		return []Recommendation{}, 0, nil
	}

	items, err := e.scoreCandidates(ctx, self, candidates)
	if err != nil {
		return nil, len(candidates), fmt.Errorf("score candidates: %w", err)
	}

	sortScored(items)
	if len(items) > c.Limit {
		items = items[:c.Limit]
	}

	recs := make([]Recommendation, len(items))
	for i, it := range items {
		recs[i] = it.Recommendation
	}
	return recs, len(candidates), nil
}

// getCandidates applies the hard filters and exclusions.
func (e *Engine) getCandidates(ctx context.Context, user *models.User, c Constraints) ([]*models.User, error) {
	var near *directory.GeoQuery
	if c.MaxDistanceKm != nil {
		near = &directory.GeoQuery{Lat: user.Location.Lat, Lon: user.Location.Lon, RadiusKm: *c.MaxDistanceKm}
	}
	pool := e.users.Candidates(ctx, user.ID, near)

	exclude, err := e.buildExclusionSet(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*models.User, 0, len(pool))
	for _, cand := range pool {
		if cand.ID == user.ID || !c.Admits(cand) {
			continue
		}
		if _, excluded := exclude[cand.ID]; excluded {
			continue
		}
		if near != nil && cache.HaversineKm(near.Lat, near.Lon, cand.Location.Lat, cand.Location.Lon) > near.RadiusKm {
			continue
		}
		filtered = append(filtered, cand)
	}
	return filtered, nil
}

func (e *Engine) buildExclusionSet(ctx context.Context, userID string) (map[string]struct{}, error) {
	if !e.config.ExcludeSwiped || e.swipes == nil {
		return nil, nil
	}
	swiped, err := e.swipes.Swiped(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load swiped targets: %w", err)
	}
	return swiped, nil
}

// scoreCandidates scores candidates with at most Limits.Workers goroutines.
// Candidates deleted since the pool snapshot are skipped.
func (e *Engine) scoreCandidates(ctx context.Context, self *models.PreferenceVector, candidates []*models.User) ([]scored, error) {
	results := make([]*scored, len(candidates))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	workers := e.config.Limits.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				cand := candidates[idx]
				vec, err := e.prefs.Get(ctx, cand.ID)
				if err != nil {
					if !errors.Is(err, models.ErrNotFound) {
						errOnce.Do(func() { firstErr = err })
					}
					continue
				}
				results[idx] = &scored{
					Recommendation: Recommendation{
						TargetID: cand.ID,
						Score:    compat.Score(self.Weights, vec.Weights),
					},
					lastActive: cand.LastActiveAt,
				}
			}
		}()
	}

feed:
	for i := range candidates {
		select {
		case jobs <- i:
		case <-ctx.Done():
			errOnce.Do(func() { firstErr = ctx.Err() })
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	items := make([]scored, 0, len(results))
	for _, r := range results {
		if r != nil {
			items = append(items, *r)
		}
	}
	return items, nil
}

// sortScored orders by score desc, lastActive desc, then target ID asc.
func sortScored(items []scored) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.lastActive.Equal(b.lastActive) {
			return a.lastActive.After(b.lastActive)
		}
		return a.TargetID < b.TargetID
	})
}

// Invalidate drops cached rankings after userID's preferences changed.
// Rankings of other users embed the old vector too, so the epoch moves.
func (e *Engine) Invalidate(userID string) {
	e.invalidations.Add(1)
	e.epoch.Add(1)
	metrics.RankCacheInvalidations.Inc()
	if e.cache == nil {
		return
	}
	removed := e.cache.RemovePrefix(userID + "|")
	e.logger.Debug().
		Str("user_id", userID).
		Int("removed", removed).
		Uint64("epoch", e.epoch.Load()).
		Msg("Ranking cache invalidated")
}

// ForgetRankings drops cached rankings requested by userID without moving
// the epoch. Used when only the user's own exclusion set changed.
func (e *Engine) ForgetRankings(userID string) {
	if e.cache == nil {
		return
	}
	e.cache.RemovePrefix(userID + "|")
}

// CleanupExpired removes expired cache entries.
func (e *Engine) CleanupExpired() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount:  e.requestCount.Load(),
		ErrorCount:    e.errorCount.Load(),
		Invalidations: e.invalidations.Load(),
		Epoch:         e.epoch.Load(),
	}
	if e.cache != nil {
		m.CacheHits, m.CacheMisses, m.CacheSize = e.cache.Stats()
	}
	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

func (e *Engine) effectiveLimit(limit int) int {
	if limit == 0 {
		return e.config.Limits.DefaultLimit
	}
	if limit > e.config.Limits.MaxLimit {
		return e.config.Limits.MaxLimit
	}
	return limit
}

// cacheKey is "<user>|<pool version>|<epoch>|<constraints>".
func (e *Engine) cacheKey(userID string, c Constraints) string {
	return fmt.Sprintf("%s|%d|%d|%s", userID, e.users.PoolVersion(), e.epoch.Load(), c.key())
}

func (e *Engine) checkCache(key string) ([]Recommendation, bool) {
	if e.cache == nil {
		return nil, false
	}
	recs, ok := e.cache.Get(key)
	metrics.RecordRankCache(ok)
	if !ok {
		return nil, false
	}
	return copyRecommendations(recs), true
}

func (e *Engine) storeCache(key string, recs []Recommendation) {
	if e.cache != nil {
		e.cache.Add(key, recs)
	}
}

func copyRecommendations(recs []Recommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	copy(out, recs)
	return out
}
