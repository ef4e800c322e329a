// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

// Package recommend ranks match candidates for a user.
//
// # Pipeline
//
//  1. Validate constraints (age range, maximum distance, limit)
//  2. Pull the candidate pool, prefiltered by the spatial grid when a
//     distance is given
//  3. Drop the user, out-of-range candidates and already-swiped targets
//  4. Score survivors against the user's preference vector with
//     compat.Score on a bounded worker pool
//  5. Sort by score, then most recently active, then target ID
//  6. Truncate to the limit
//
// # Caching
//
// Results are cached in an LRU keyed by user, candidate pool version,
// preference epoch and constraints. Invalidate purges the user's entries and
// advances the epoch, which retires every cached ranking at once because any
// of them may embed the changed vector.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.ConfigFrom(cfg.Recommend), dir, prefs, swipes)
//	prefs.OnUpdate(engine.Invalidate)
//	recs, err := engine.Rank(ctx, "alice", recommend.Constraints{Limit: 10})
package recommend
