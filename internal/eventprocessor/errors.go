// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import "errors"

// ErrInvalidEvent is returned for envelopes missing required fields.
var ErrInvalidEvent = errors.New("invalid event")

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// ErrNilPublisher is returned when wrapping a nil Watermill publisher.
var ErrNilPublisher = errors.New("publisher cannot be nil")
