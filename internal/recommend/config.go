// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package recommend

import (
	"fmt"
	"runtime"
	"time"

	"github.com/tomtom215/lovesync/internal/config"
)

// Config contains all configuration for the ranking engine.
type Config struct {
	// Limits contains result size and concurrency limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains caching parameters.
	Cache CacheConfig `json:"cache"`

	// ExcludeSwiped drops targets the user has already swiped on.
	ExcludeSwiped bool `json:"exclude_swiped"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not set one.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps the requested limit.
	MaxLimit int `json:"max_limit"`

	// Workers bounds concurrent candidate scoring.
	Workers int `json:"workers"`

	// RequestTimeout bounds a single ranking, 0 for none.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	Enabled    bool          `json:"enabled"`
	TTL        time.Duration `json:"ttl"`
	MaxEntries int           `json:"max_entries"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultLimit:   20,
			MaxLimit:       100,
			Workers:        8,
			RequestTimeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        time.Minute,
			MaxEntries: 10000,
		},
		ExcludeSwiped: true,
	}
}

// ConfigFrom builds an engine configuration from the application config,
// falling back to defaults for unset values. Zero workers means one per CPU.
func ConfigFrom(rc config.RecommendConfig) *Config {
	cfg := DefaultConfig()
	if rc.DefaultLimit > 0 {
		cfg.Limits.DefaultLimit = rc.DefaultLimit
	}
	if rc.MaxLimit > 0 {
		cfg.Limits.MaxLimit = rc.MaxLimit
	}
	switch {
	case rc.Workers > 0:
		cfg.Limits.Workers = rc.Workers
	case rc.Workers == 0:
		cfg.Limits.Workers = runtime.NumCPU()
	}
	cfg.Limits.RequestTimeout = rc.RequestTimeout
	cfg.ExcludeSwiped = rc.ExcludeSwiped
	cfg.Cache.Enabled = rc.CacheEnabled
	if rc.CacheTTL > 0 {
		cfg.Cache.TTL = rc.CacheTTL
	}
	if rc.CacheMaxEntries > 0 {
		cfg.Cache.MaxEntries = rc.CacheMaxEntries
	}
	return cfg
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Limits.DefaultLimit <= 0 {
		return fmt.Errorf("limits.default_limit must be positive")
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= default_limit")
	}
	if c.Limits.Workers <= 0 {
		return fmt.Errorf("limits.workers must be positive")
	}
	if c.Limits.RequestTimeout < 0 {
		return fmt.Errorf("limits.request_timeout must not be negative")
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when cache is enabled")
		}
		if c.Cache.MaxEntries <= 0 {
			return fmt.Errorf("cache.max_entries must be positive when cache is enabled")
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
