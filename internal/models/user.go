// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Age bounds accepted for profiles and discovery filters.
const (
	MinAge = 18
	MaxAge = 120
)

// Location is a WGS84 coordinate.
type Location struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// User is a member profile. Raw attributes drive swipe deltas, age and
// location drive the ranking constraints.
type User struct {
	ID        string   `json:"id" validate:"omitempty,entityid"`
	Name      string   `json:"name" validate:"required,min=1,max=100"`
	Age       int      `json:"age" validate:"min=18,max=120"`
	Location  Location `json:"location"`
	Interests []string `json:"interests,omitempty" validate:"max=50,dive,min=1,max=64"`

	// Attributes holds explicit attribute weights in [-1, 1]. When empty the
	// declared interests are used with weight 1.
	Attributes map[string]float64 `json:"attributes,omitempty" validate:"max=200,dive,keys,min=1,max=64,endkeys,min=-1,max=1"`

	// Discovery holds saved ranking filters, applied when a request omits them.
	Discovery *Discovery `json:"discovery,omitempty"`

	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}

// AttributeSet returns the user's normalized attribute weights.
func (u *User) AttributeSet() map[string]float64 {
	out := make(map[string]float64, len(u.Attributes)+len(u.Interests))
	if len(u.Attributes) > 0 {
		for k, v := range u.Attributes {
			if key := NormalizeAttribute(k); key != "" {
				out[key] = v
			}
		}
		return out
	}
	for _, interest := range u.Interests {
		if key := NormalizeAttribute(interest); key != "" {
			out[key] = 1
		}
	}
	return out
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	c := *u
	if u.Interests != nil {
		c.Interests = append([]string(nil), u.Interests...)
	}
	if u.Attributes != nil {
		c.Attributes = make(map[string]float64, len(u.Attributes))
		for k, v := range u.Attributes {
			c.Attributes[k] = v
		}
	}
	c.Discovery = u.Discovery.Clone()
	return &c
}

// Discovery is a user's saved age range and search radius. Nil fields are
// unbounded.
type Discovery struct {
	AgeMin        *int     `json:"ageMin,omitempty"`
	AgeMax        *int     `json:"ageMax,omitempty"`
	MaxDistanceKm *float64 `json:"maxDistance,omitempty"`
}

// Validate checks ranges and ordering. Errors wrap ErrInvalidInput.
func (d *Discovery) Validate() error {
	if d == nil {
		return nil
	}
	if d.AgeMin != nil && (*d.AgeMin < MinAge || *d.AgeMin > MaxAge) {
		return fmt.Errorf("%w: ageMin must be between %d and %d", ErrInvalidInput, MinAge, MaxAge)
	}
	if d.AgeMax != nil && (*d.AgeMax < MinAge || *d.AgeMax > MaxAge) {
		return fmt.Errorf("%w: ageMax must be between %d and %d", ErrInvalidInput, MinAge, MaxAge)
	}
	if d.AgeMin != nil && d.AgeMax != nil && *d.AgeMin > *d.AgeMax {
		return fmt.Errorf("%w: ageMin must not exceed ageMax", ErrInvalidInput)
	}
	if d.MaxDistanceKm != nil {
		km := *d.MaxDistanceKm
		if km <= 0 || math.IsNaN(km) || math.IsInf(km, 0) {
			return fmt.Errorf("%w: maxDistance must be a positive number of kilometres", ErrInvalidInput)
		}
	}
	return nil
}

// IsZero reports whether no filter is set.
func (d *Discovery) IsZero() bool {
	return d == nil || (d.AgeMin == nil && d.AgeMax == nil && d.MaxDistanceKm == nil)
}

// Clone returns a deep copy; nil stays nil.
func (d *Discovery) Clone() *Discovery {
	if d == nil {
		return nil
	}
	c := &Discovery{}
	if d.AgeMin != nil {
		v := *d.AgeMin
		c.AgeMin = &v
	}
	if d.AgeMax != nil {
		v := *d.AgeMax
		c.AgeMax = &v
	}
	if d.MaxDistanceKm != nil {
		v := *d.MaxDistanceKm
		c.MaxDistanceKm = &v
	}
	return c
}

// NormalizeAttribute canonicalizes an attribute or interest name:
// lower case, trimmed, inner whitespace collapsed to underscores.
func NormalizeAttribute(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "_")
}
