// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package eventprocessor

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tomtom215/lovesync/internal/metrics"
)

func TestNewCircuitBreaker(t *testing.T) {
	cb := NewCircuitBreaker(DefaultCircuitBreakerConfig("test-breaker"))

	if cb.Name() != "test-breaker" {
		t.Errorf("Name() = %s, want test-breaker", cb.Name())
	}
	if got := CircuitBreakerState(cb); got != "closed" {
		t.Errorf("initial state = %s, want closed", got)
	}
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig("trip-test")
	cfg.FailureThreshold = 3
	cfg.Timeout = time.Hour
	cb := NewCircuitBreaker(cfg)

	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		_, err := cb.Execute(func() (interface{}, error) { return nil, boom })
		if !errors.Is(err, boom) {
			t.Fatalf("attempt %d: err = %v, want boom", i, err)
		}
	}

	if got := CircuitBreakerState(cb); got != "open" {
		t.Fatalf("state = %s, want open", got)
	}

	_, err := cb.Execute(func() (interface{}, error) { return "unreachable", nil })
	if !IsBreakerRejection(err) {
		t.Errorf("expected breaker rejection, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("trip-test")); got != 2 {
		t.Errorf("breaker state metric = %v, want 2", got)
	}
}

func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	notFound := errors.New("not found")

	cfg := DefaultCircuitBreakerConfig("classify-test")
	cfg.FailureThreshold = 1
	cfg.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, notFound)
	}
	cb := NewCircuitBreaker(cfg)

	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, notFound })
	}

	if got := CircuitBreakerState(cb); got != "closed" {
		t.Errorf("state = %s, want closed: classified errors must not trip", got)
	}
}

func TestIsBreakerRejection(t *testing.T) {
	if IsBreakerRejection(nil) {
		t.Error("nil is not a rejection")
	}
	if IsBreakerRejection(errors.New("other")) {
		t.Error("plain error is not a rejection")
	}
}
