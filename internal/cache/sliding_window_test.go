// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package cache

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestWindowCounter_AddAndCount(t *testing.T) {
	clock := newFakeClock()
	w := newWindowCounter(time.Hour, 12, clock.Now)

	if got := w.Count(); got != 0 {
		t.Fatalf("initial Count() = %d, want 0", got)
	}
	if got := w.Add(1); got != 1 {
		t.Errorf("Add(1) = %d, want 1", got)
	}
	if got := w.Add(3); got != 4 {
		t.Errorf("Add(3) = %d, want 4", got)
	}
}

func TestWindowCounter_Expiration(t *testing.T) {
	clock := newFakeClock()
	w := newWindowCounter(time.Hour, 12, clock.Now)

	w.Add(10)
	clock.Advance(30 * time.Minute)
	w.Add(5)

	if got := w.Count(); got != 15 {
		t.Errorf("Count() at 30m = %d, want 15", got)
	}

	// first batch falls out once its bucket rotates past the window
	clock.Advance(35 * time.Minute)
	if got := w.Count(); got != 5 {
		t.Errorf("Count() at 65m = %d, want 5", got)
	}

	clock.Advance(2 * time.Hour)
	if got := w.Count(); got != 0 {
		t.Errorf("Count() after full window = %d, want 0", got)
	}
}

func TestWindowCounter_Concurrent(t *testing.T) {
	w := NewWindowCounter(time.Hour, 12)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				w.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := w.Count(); got != 5000 {
		t.Errorf("Count() = %d, want 5000", got)
	}
}

func TestWindowStore_PerKey(t *testing.T) {
	store := NewWindowStore(time.Hour, 12, 0)

	store.Increment("u1")
	if got := store.Increment("u1"); got != 2 {
		t.Errorf("Increment(u1) = %d, want 2", got)
	}
	store.Increment("u2")

	tests := []struct {
		key  string
		want int64
	}{
		{"u1", 2},
		{"u2", 1},
		{"u3", 0},
	}
	for _, tt := range tests {
		if got := store.Count(tt.key); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}

	store.Remove("u1")
	if got := store.Count("u1"); got != 0 {
		t.Errorf("Count(u1) after Remove = %d, want 0", got)
	}
}

func TestWindowStore_MaxKeys(t *testing.T) {
	store := NewWindowStore(time.Hour, 12, 2)
	store.Increment("a")
	store.Increment("b")
	store.Increment("c")

	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
	if store.Count("c") != 1 {
		t.Error("most recent key must survive eviction")
	}
}

func TestWindowStore_CleanupInactive(t *testing.T) {
	clock := newFakeClock()
	store := NewWindowStore(time.Hour, 12, 0)
	store.now = clock.Now

	store.Increment("old")
	clock.Advance(50 * time.Minute)
	store.Increment("new")
	clock.Advance(20 * time.Minute)

	if removed := store.CleanupInactive(); removed != 1 {
		t.Errorf("CleanupInactive() = %d, want 1", removed)
	}
	if store.Count("new") != 1 {
		t.Error("new key should still be counted")
	}
}
