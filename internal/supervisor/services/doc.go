// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

// Package services adapts LoveSync components to suture.Service.
//
// Every wrapper blocks in Serve until its context is canceled, returns
// ctx.Err() on a clean stop and a wrapped error on failure so the
// supervisor restarts it.
package services
