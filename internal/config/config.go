// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
	Storage      StorageConfig      `koanf:"storage"`
	Preference   PreferenceConfig   `koanf:"preference"`
	Swipe        SwipeConfig        `koanf:"swipe"`
	Recommend    RecommendConfig    `koanf:"recommend"`
	Conversation ConversationConfig `koanf:"conversation"`
	Events       EventsConfig       `koanf:"events"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// StorageConfig holds BadgerDB settings.
type StorageConfig struct {
	// Path is the Badger data directory. Ignored when InMemory is set.
	Path       string `koanf:"path"`
	InMemory   bool   `koanf:"in_memory"`
	SyncWrites bool   `koanf:"sync_writes"`

	// Circuit breaker guarding every storage transaction.
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
}

// PreferenceConfig holds preference model settings.
type PreferenceConfig struct {
	// Alpha is the exponential decay factor: new = old*(1-alpha) + delta*alpha.
	Alpha float64 `koanf:"alpha"`
}

// SwipeConfig holds swipe ingestion settings.
type SwipeConfig struct {
	// RecentWindow bounds the "recent swipe count" used to dampen deltas.
	RecentWindow    time.Duration `koanf:"recent_window"`
	RecentBuckets   int           `koanf:"recent_buckets"`
	MaxTrackedUsers int           `koanf:"max_tracked_users"`
}

// RecommendConfig holds ranker settings.
type RecommendConfig struct {
	DefaultLimit    int           `koanf:"default_limit"`
	MaxLimit        int           `koanf:"max_limit"`
	Workers         int           `koanf:"workers"`
	ExcludeSwiped   bool          `koanf:"exclude_swiped"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
	SpatialCellKm   float64       `koanf:"spatial_cell_km"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
}

// ConversationConfig holds conversational agent settings.
type ConversationConfig struct {
	MaxFollowUps  int           `koanf:"max_follow_ups"`
	SessionTTL    time.Duration `koanf:"session_ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
	MaxSessions   int           `koanf:"max_sessions"`
}

// EventsConfig holds domain event bus settings.
type EventsConfig struct {
	OutputBuffer         int64         `koanf:"output_buffer"`
	RetryMaxRetries      int           `koanf:"retry_max_retries"`
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval"`
	CloseTimeout         time.Duration `koanf:"close_timeout"`

	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
}

// Load reads configuration from defaults, an optional YAML file and
// environment variables, later sources overriding earlier ones.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
