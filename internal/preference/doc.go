// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

// Package preference maintains each user's preference vector: a sparse map
// from attribute to affinity, updated by exponential decay
//
//	new[k] = old[k]*(1-alpha) + delta[k]*alpha
//
// over the union of keys. Reset restores the profile-derived seed.
package preference
