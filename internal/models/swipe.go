// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package models

import (
	"fmt"
	"strings"
	"time"
)

// Direction is a binary swipe decision.
type Direction string

const (
	DirectionLike Direction = "like"
	DirectionPass Direction = "pass"
)

// ParseDirection parses a direction case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionLike:
		return DirectionLike, nil
	case DirectionPass:
		return DirectionPass, nil
	default:
		return "", fmt.Errorf("%w: direction must be like or pass, got %q", ErrInvalidInput, s)
	}
}

// Sign returns +1 for like and -1 for pass.
func (d Direction) Sign() float64 {
	if d == DirectionLike {
		return 1
	}
	return -1
}

// SwipeEvent records one decision of UserID on TargetID. Events are never
// mutated once stored; a changed decision replaces the record wholesale.
type SwipeEvent struct {
	UserID    string    `json:"userId"`
	TargetID  string    `json:"targetId"`
	Direction Direction `json:"direction"`
	Timestamp time.Time `json:"timestamp"`
}
