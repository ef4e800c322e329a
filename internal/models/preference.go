// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package models

import "time"

// Delta is a signed, weighted change to a preference vector.
type Delta map[string]float64

// Empty reports whether the delta carries no signal.
func (d Delta) Empty() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Scale returns a copy of the delta with every weight multiplied by f.
func (d Delta) Scale(f float64) Delta {
	out := make(Delta, len(d))
	for k, v := range d {
		out[k] = v * f
	}
	return out
}

// PreferenceVector is a user's learned attribute affinity map.
type PreferenceVector struct {
	UserID    string             `json:"userId"`
	Weights   map[string]float64 `json:"weights"`
	Version   uint64             `json:"version"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Clone returns a deep copy so callers never share the weight map.
func (v *PreferenceVector) Clone() *PreferenceVector {
	c := *v
	c.Weights = make(map[string]float64, len(v.Weights))
	for k, w := range v.Weights {
		c.Weights[k] = w
	}
	return &c
}
