// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package recommend

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/lovesync/internal/models"
)

// Age bounds accepted in constraints.
const (
	MinAge = models.MinAge
	MaxAge = models.MaxAge
)

// Constraints are the hard filters of a ranking request. Nil fields are
// unbounded.
type Constraints struct {
	// AgeMin and AgeMax are inclusive.
	AgeMin *int `json:"ageMin,omitempty"`
	AgeMax *int `json:"ageMax,omitempty"`

	// MaxDistanceKm is measured from the requesting user's location.
	MaxDistanceKm *float64 `json:"maxDistance,omitempty"`

	// Limit is the maximum number of results, 0 for the default.
	Limit int `json:"limit,omitempty"`
}

// Validate checks ranges and ordering. Errors wrap models.ErrInvalidInput.
// The filters are checked by the same rules as saved discovery settings.
func (c Constraints) Validate() error {
	if err := c.Filters().Validate(); err != nil {
		return err
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", models.ErrInvalidInput)
	}
	return nil
}

// Filters returns the age and distance filters as discovery settings.
func (c Constraints) Filters() *models.Discovery {
	return &models.Discovery{AgeMin: c.AgeMin, AgeMax: c.AgeMax, MaxDistanceKm: c.MaxDistanceKm}
}

// WithDefaults fills filters the request left unset from saved settings.
// The age range is taken as a pair: setting either bound in the request
// ignores the saved range.
func (c Constraints) WithDefaults(saved *models.Discovery) Constraints {
	if saved == nil {
		return c
	}
	saved = saved.Clone()
	if c.AgeMin == nil && c.AgeMax == nil {
		c.AgeMin, c.AgeMax = saved.AgeMin, saved.AgeMax
	}
	if c.MaxDistanceKm == nil {
		c.MaxDistanceKm = saved.MaxDistanceKm
	}
	return c
}

// Admits reports whether the candidate passes the age filter.
func (c Constraints) Admits(candidate *models.User) bool {
	if c.AgeMin != nil && candidate.Age < *c.AgeMin {
		return false
	}
	if c.AgeMax != nil && candidate.Age > *c.AgeMax {
		return false
	}
	return true
}

// key renders the constraints for cache keys.
func (c Constraints) key() string {
	var b strings.Builder
	writeInt := func(p *int) {
		if p == nil {
			b.WriteByte('-')
			return
		}
		b.WriteString(strconv.Itoa(*p))
	}
	writeInt(c.AgeMin)
	b.WriteByte(',')
	writeInt(c.AgeMax)
	b.WriteByte(',')
	if c.MaxDistanceKm == nil {
		b.WriteByte('-')
	} else {
		b.WriteString(strconv.FormatFloat(*c.MaxDistanceKm, 'g', -1, 64))
	}
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(c.Limit))
	return b.String()
}

// Recommendation is one ranked candidate.
type Recommendation struct {
	TargetID string  `json:"targetId"`
	Score    float64 `json:"score"`
}

// scored carries the tie-break fields through sorting.
type scored struct {
	Recommendation
	lastActive time.Time
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount  int64  `json:"request_count"`
	CacheHits     int64  `json:"cache_hits"`
	CacheMisses   int64  `json:"cache_misses"`
	CacheSize     int    `json:"cache_size"`
	ErrorCount    int64  `json:"error_count"`
	Invalidations int64  `json:"invalidations"`
	Epoch         uint64 `json:"epoch"`
}
