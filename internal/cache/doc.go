// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package cache provides the in-memory data structures used on the hot path.

# Structures

  - LRU: generic least-recently-used cache with per-entry TTL. Backs the
    recommendation cache, where entries are keyed by user and pool version
    and purged per user with RemovePrefix.
  - WindowCounter / WindowStore: bucketed sliding-window counters. The swipe
    service uses a WindowStore to count each user's recent swipes, which
    scales the preference delta.
  - SpatialGrid: lat/lon hash grid for radius queries. The user directory
    uses it to prefilter candidates by maximum distance.

HaversineKm is the single distance function; the grid and the ranker both
use it so a candidate accepted by the grid is never rejected by the ranker.

# Usage

	ranked := cache.NewLRU[[]Recommendation](10000, 5*time.Minute)
	ranked.Add("u1|42|...", recs)
	ranked.RemovePrefix("u1|")

	recent := cache.NewWindowStore(time.Hour, 12, 100000)
	n := recent.Increment("u1") // includes this swipe

	grid := cache.NewSpatialGrid(25)
	grid.Insert("u2", 51.50, -0.12)
	ids := grid.Within(51.45, -0.10, 10)

# Thread Safety

Every type is safe for concurrent use.
*/
package cache
