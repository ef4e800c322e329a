// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package preference

import (
	"math"

	"github.com/tomtom215/lovesync/internal/models"
)

// pruneEpsilon is the magnitude below which a merged weight is dropped.
const pruneEpsilon = 1e-6

// SeedInterestWeight is the initial affinity for each declared interest.
const SeedInterestWeight = 0.5

// Merge returns old*(1-alpha) + delta*alpha over the union of keys, with
// missing values taken as 0 and near-zero results pruned. old is not modified.
func Merge(old map[string]float64, delta models.Delta, alpha float64) map[string]float64 {
	out := make(map[string]float64, len(old)+len(delta))

	for k, w := range old {
		out[k] = w * (1 - alpha)
	}
	for k, d := range delta {
		out[k] += d * alpha
	}
	for k, w := range out {
		if math.Abs(w) < pruneEpsilon || math.IsNaN(w) {
			delete(out, k)
		}
	}
	return out
}

// SeedWeights derives a new user's starting vector from the profile's
// attribute set scaled by SeedInterestWeight. Declared interests count as
// attributes of weight 1 when no explicit attributes are given.
func SeedWeights(u *models.User) map[string]float64 {
	attrs := u.AttributeSet()
	out := make(map[string]float64, len(attrs))
	for key, w := range attrs {
		if seeded := w * SeedInterestWeight; math.Abs(seeded) >= pruneEpsilon {
			out[key] = seeded
		}
	}
	return out
}
