// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package models

import "errors"

// Sentinel errors. Components wrap these so callers can classify with errors.Is.
var (
	// ErrNotFound indicates an unknown user, target or session.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed request such as an unknown swipe
	// direction or out-of-range ranking constraints.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a state conflict, e.g. answering a completed session.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable indicates that a backing store is temporarily unavailable.
	// The core never retries on its own; callers retry with backoff.
	ErrUnavailable = errors.New("service unavailable")
)

// IsClientError reports whether err is caused by the caller and must not be retried.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrConflict)
}
