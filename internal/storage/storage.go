// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tomtom215/lovesync/internal/config"
	"github.com/tomtom215/lovesync/internal/eventprocessor"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/metrics"
	"github.com/tomtom215/lovesync/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	userKeyPrefix       = "user:"
	preferenceKeyPrefix = "pref:"
	swipeKeyPrefix      = "swipe:"
)

// Store persists users, preference vectors and the swipe log in BadgerDB.
// Every transaction runs through a circuit breaker; while it is open calls
// fail fast with models.ErrUnavailable.
//
// Example usage:
//
//	store, err := storage.Open(cfg.Storage)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	user, err := store.GetUser(ctx, "alice")
//	if errors.Is(err, models.ErrNotFound) {
//	    // unknown user
//	}
type Store struct {
	db      *badger.DB
	breaker *gobreaker.CircuitBreaker[interface{}]
}

// Open opens (or creates) the Badger database described by cfg.
// With InMemory set, the path is ignored and nothing is written to disk.
func Open(cfg config.StorageConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.Path, err)
	}

	breakerCfg := eventprocessor.DefaultCircuitBreakerConfig("storage")
	if cfg.BreakerFailureThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.BreakerFailureThreshold
	}
	if cfg.BreakerTimeout > 0 {
		breakerCfg.Timeout = cfg.BreakerTimeout
	}
	breakerCfg.IsSuccessful = func(err error) bool {
		return err == nil || models.IsClientError(err) || errors.Is(err, context.Canceled)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Storage opened")

	return &Store{
		db:      db,
		breaker: eventprocessor.NewCircuitBreaker(breakerCfg),
	}, nil
}

// OpenInMemory opens a throwaway in-memory store.
func OpenInMemory() (*Store, error) {
	return Open(config.StorageConfig{InMemory: true})
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the store can serve reads.
func (s *Store) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return fmt.Errorf("%w: storage closed", models.ErrUnavailable)
	}
	return s.view(ctx, "ping", func(*badger.Txn) error { return nil })
}

// BreakerState returns the storage circuit breaker state.
func (s *Store) BreakerState() string {
	return eventprocessor.CircuitBreakerState(s.breaker)
}

func (s *Store) update(ctx context.Context, op string, fn func(txn *badger.Txn) error) error {
	return s.execute(ctx, op, func() error { return s.db.Update(fn) })
}

func (s *Store) view(ctx context.Context, op string, fn func(txn *badger.Txn) error) error {
	return s.execute(ctx, op, func() error { return s.db.View(fn) })
}

// execute runs fn through the breaker and records timing. Client errors
// (not found, conflict) pass through unwrapped. A Badger transaction conflict
// becomes models.ErrConflict so callers can retry, and does not trip the
// breaker.
func (s *Store) execute(ctx context.Context, op string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	_, err := s.breaker.Execute(func() (interface{}, error) {
		err := fn()
		if errors.Is(err, badger.ErrConflict) {
			err = fmt.Errorf("%w: %s: concurrent write to the same key", models.ErrConflict, op)
		}
		return nil, err
	})

	var recorded error
	if err != nil && !models.IsClientError(err) {
		recorded = err
	}
	metrics.RecordStorageOperation(op, time.Since(start), recorded)

	switch {
	case err == nil, models.IsClientError(err):
		return err
	case eventprocessor.IsBreakerRejection(err):
		return fmt.Errorf("%w: %s: %v", models.ErrUnavailable, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
