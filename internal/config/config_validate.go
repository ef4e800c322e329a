// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/lovesync/internal/logging"
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
		c.validateStorage,
		c.validatePreference,
		c.validateSwipe,
		c.validateRecommend,
		c.validateConversation,
		c.validateEvents,
	}
	var errs []error
	for _, v := range validators {
		if err := v(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be >= 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateStorage() error {
	if !c.Storage.InMemory && strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage.path is required unless storage.in_memory is set")
	}
	if c.Storage.BreakerFailureThreshold == 0 {
		return fmt.Errorf("storage.breaker_failure_threshold must be >= 1")
	}
	return nil
}

func (c *Config) validatePreference() error {
	if c.Preference.Alpha <= 0 || c.Preference.Alpha > 1 {
		return fmt.Errorf("preference.alpha must be in (0, 1], got %v", c.Preference.Alpha)
	}
	return nil
}

func (c *Config) validateSwipe() error {
	if c.Swipe.RecentWindow <= 0 {
		return fmt.Errorf("swipe.recent_window must be positive")
	}
	if c.Swipe.RecentBuckets < 1 {
		return fmt.Errorf("swipe.recent_buckets must be >= 1, got %d", c.Swipe.RecentBuckets)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxLimit < 1 {
		return fmt.Errorf("recommend.max_limit must be >= 1, got %d", r.MaxLimit)
	}
	if r.DefaultLimit < 1 || r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("recommend.default_limit must be between 1 and max_limit (%d), got %d", r.MaxLimit, r.DefaultLimit)
	}
	if r.Workers < 0 {
		return fmt.Errorf("recommend.workers must be >= 0, got %d", r.Workers)
	}
	if r.CacheEnabled && (r.CacheTTL <= 0 || r.CacheMaxEntries < 1) {
		return fmt.Errorf("recommend.cache_ttl and recommend.cache_max_entries must be positive when the cache is enabled")
	}
	if r.SpatialCellKm <= 0 {
		return fmt.Errorf("recommend.spatial_cell_km must be positive")
	}
	return nil
}

func (c *Config) validateConversation() error {
	cv := c.Conversation
	if cv.MaxFollowUps < 0 {
		return fmt.Errorf("conversation.max_follow_ups must be >= 0, got %d", cv.MaxFollowUps)
	}
	if cv.SessionTTL <= 0 || cv.SweepInterval <= 0 {
		return fmt.Errorf("conversation.session_ttl and conversation.sweep_interval must be positive")
	}
	if cv.MaxSessions < 1 {
		return fmt.Errorf("conversation.max_sessions must be >= 1, got %d", cv.MaxSessions)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if c.Events.OutputBuffer < 0 {
		return fmt.Errorf("events.output_buffer must be >= 0")
	}
	if c.Events.RetryMaxRetries < 0 {
		return fmt.Errorf("events.retry_max_retries must be >= 0")
	}
	if c.Events.BreakerFailureThreshold == 0 {
		return fmt.Errorf("events.breaker_failure_threshold must be >= 1")
	}
	return nil
}
