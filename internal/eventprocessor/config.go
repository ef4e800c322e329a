// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import (
	"time"

	"github.com/tomtom215/lovesync/internal/config"
)

// Config holds bus, router and publisher settings.
type Config struct {
	// OutputBuffer is the per-subscriber channel buffer of the in-process pubsub.
	OutputBuffer int64

	// Router retry for failed handlers
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration

	// CloseTimeout bounds how long Close waits for in-flight handlers.
	CloseTimeout time.Duration

	Breaker CircuitBreakerConfig
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		OutputBuffer:         256,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     5 * time.Second,
		CloseTimeout:         10 * time.Second,
		Breaker:              DefaultCircuitBreakerConfig("event-publisher"),
	}
}

// ConfigFrom maps the application events section onto Config.
func ConfigFrom(cfg config.EventsConfig) Config {
	c := DefaultConfig()
	if cfg.OutputBuffer > 0 {
		c.OutputBuffer = cfg.OutputBuffer
	}
	if cfg.RetryMaxRetries >= 0 {
		c.RetryMaxRetries = cfg.RetryMaxRetries
	}
	if cfg.RetryInitialInterval > 0 {
		c.RetryInitialInterval = cfg.RetryInitialInterval
	}
	if cfg.CloseTimeout > 0 {
		c.CloseTimeout = cfg.CloseTimeout
	}
	if cfg.BreakerFailureThreshold > 0 {
		c.Breaker.FailureThreshold = cfg.BreakerFailureThreshold
	}
	if cfg.BreakerTimeout > 0 {
		c.Breaker.Timeout = cfg.BreakerTimeout
	}
	return c
}
