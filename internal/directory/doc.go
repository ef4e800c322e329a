// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

// Package directory owns user profiles and the candidate pool.
//
// Profiles are persisted through a Repository and mirrored in memory together
// with a spatial hash grid, so candidate scans and distance prefilters never
// touch storage. PoolVersion changes when users join or leave and is part of
// every ranking cache key.
package directory
