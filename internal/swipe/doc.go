// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

// Package swipe ingests like/pass decisions.
//
// Each swipe converts the target's attribute set into a signed delta scaled
// by 1/n, where n is the number of swipes the user recorded in the recent
// window including this one, and forwards it to the preference store.
// Ingestion is idempotent per (user, target).
package swipe
