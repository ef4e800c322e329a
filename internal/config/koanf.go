// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/lovesync/config.yaml",
	"/etc/lovesync/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Storage: StorageConfig{
			Path:                    "/data/lovesync",
			InMemory:                false,
			SyncWrites:              false,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
		},
		Preference: PreferenceConfig{
			Alpha: 0.15,
		},
		Swipe: SwipeConfig{
			RecentWindow:    time.Hour,
			RecentBuckets:   12,
			MaxTrackedUsers: 100000,
		},
		Recommend: RecommendConfig{
			DefaultLimit:    20,
			MaxLimit:        100,
			Workers:         0, // 0 = runtime.NumCPU()
			ExcludeSwiped:   true,
			CacheEnabled:    true,
			CacheTTL:        5 * time.Minute,
			CacheMaxEntries: 10000,
			SpatialCellKm:   25,
			RequestTimeout:  5 * time.Second,
		},
		Conversation: ConversationConfig{
			MaxFollowUps:  2,
			SessionTTL:    30 * time.Minute,
			SweepInterval: time.Minute,
			MaxSessions:   100000,
		},
		Events: EventsConfig{
			OutputBuffer:            256,
			RetryMaxRetries:         3,
			RetryInitialInterval:    100 * time.Millisecond,
			CloseTimeout:            10 * time.Second,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration in three layers:
//  1. Built-in defaults (structs provider)
//  2. YAML config file (CONFIG_PATH or DefaultConfigPaths), optional
//  3. Environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// HTTP_PORT -> server.port, PREFERENCE_ALPHA -> preference.alpha, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Storage
	"badger_path":                       "storage.path",
	"badger_in_memory":                  "storage.in_memory",
	"badger_sync_writes":                "storage.sync_writes",
	"storage_breaker_failure_threshold": "storage.breaker_failure_threshold",
	"storage_breaker_timeout":           "storage.breaker_timeout",

	// Preference model
	"preference_alpha": "preference.alpha",

	// Swipe ingestion
	"swipe_recent_window":     "swipe.recent_window",
	"swipe_recent_buckets":    "swipe.recent_buckets",
	"swipe_max_tracked_users": "swipe.max_tracked_users",

	// Recommendation ranker
	"recommend_default_limit":     "recommend.default_limit",
	"recommend_max_limit":         "recommend.max_limit",
	"recommend_workers":           "recommend.workers",
	"recommend_exclude_swiped":    "recommend.exclude_swiped",
	"recommend_cache_enabled":     "recommend.cache_enabled",
	"recommend_cache_ttl":         "recommend.cache_ttl",
	"recommend_cache_max_entries": "recommend.cache_max_entries",
	"recommend_spatial_cell_km":   "recommend.spatial_cell_km",
	"recommend_request_timeout":   "recommend.request_timeout",

	// Conversation
	"conversation_max_follow_ups": "conversation.max_follow_ups",
	"conversation_session_ttl":    "conversation.session_ttl",
	"conversation_sweep_interval": "conversation.sweep_interval",
	"conversation_max_sessions":   "conversation.max_sessions",

	// Events
	"events_output_buffer":             "events.output_buffer",
	"events_retry_max_retries":         "events.retry_max_retries",
	"events_retry_initial_interval":    "events.retry_initial_interval",
	"events_close_timeout":             "events.close_timeout",
	"events_breaker_failure_threshold": "events.breaker_failure_threshold",
	"events_breaker_timeout":           "events.breaker_timeout",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unknown variables map to "" and are ignored by koanf.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}
