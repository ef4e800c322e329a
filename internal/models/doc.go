// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package models defines the data structures shared across the LoveSync engine.

Key Components:

  - User: profile attributes used for filtering and delta construction
  - PreferenceVector: the learned attribute affinity map of a user
  - SwipeEvent: an immutable like/pass decision
  - APIError / APIResponse: the JSON error envelope returned by the HTTP API

Error Taxonomy:

The sentinel errors ErrNotFound, ErrInvalidInput, ErrConflict and ErrUnavailable
are wrapped by every component with fmt.Errorf("...: %w", err) and mapped to HTTP
status codes by the API layer using errors.Is.

Attribute keys are normalized with NormalizeAttribute before they reach a
preference vector, so "Hiking", " hiking " and "HIKING" address the same weight.
*/
package models
