// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package storage persists LoveSync state in BadgerDB.

Key layout (values are JSON):

	user:<userId>               models.User
	pref:<userId>               models.PreferenceVector
	swipe:<userId>:<targetId>   models.SwipeEvent

User IDs never contain ':' (enforced by validation), so prefix scans over
swipe:<userId>: cannot match another user's log.

A missing key surfaces as models.ErrNotFound. Transactions run through a
gobreaker circuit breaker named "storage"; client errors do not count as
failures, and an open breaker surfaces as models.ErrUnavailable. Tests use
OpenInMemory.
*/
package storage
