// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package cache

import (
	"sync"
	"time"
)

// WindowCounter counts events over a sliding time window split into
// fixed-size buckets. Count is approximate to one bucket width.
//
// Increment is O(1); Count is O(buckets).
type WindowCounter struct {
	mu         sync.Mutex
	buckets    []int64
	bucketSize time.Duration
	current    int
	lastUpdate time.Time
	now        func() time.Time
}

// NewWindowCounter creates a counter over window divided into numBuckets.
// NewWindowCounter(time.Hour, 12) tracks the last hour in 5 minute slices.
func NewWindowCounter(window time.Duration, numBuckets int) *WindowCounter {
	return newWindowCounter(window, numBuckets, time.Now)
}

func newWindowCounter(window time.Duration, numBuckets int, now func() time.Time) *WindowCounter {
	if numBuckets <= 0 {
		numBuckets = 12
	}
	if window <= 0 {
		window = time.Hour
	}
	bucketSize := window / time.Duration(numBuckets)
	if bucketSize <= 0 {
		bucketSize = time.Nanosecond
	}
	return &WindowCounter{
		buckets:    make([]int64, numBuckets),
		bucketSize: bucketSize,
		lastUpdate: now(),
		now:        now,
	}
}

// Add adds delta to the current bucket and returns the window total.
func (w *WindowCounter) Add(delta int64) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.advance()
	w.buckets[w.current] += delta
	return w.sum()
}

// Count returns the window total.
func (w *WindowCounter) Count() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.advance()
	return w.sum()
}

func (w *WindowCounter) sum() int64 {
	var total int64
	for _, n := range w.buckets {
		total += n
	}
	return total
}

// advance rotates past buckets that have fully elapsed. Lock held.
func (w *WindowCounter) advance() {
	now := w.now()
	elapsed := int(now.Sub(w.lastUpdate) / w.bucketSize)
	if elapsed <= 0 {
		return
	}

	if elapsed >= len(w.buckets) {
		clear(w.buckets)
		w.current = 0
	} else {
		for i := 0; i < elapsed; i++ {
			w.current = (w.current + 1) % len(w.buckets)
			w.buckets[w.current] = 0
		}
	}
	// keep lastUpdate aligned to bucket boundaries so partial buckets are not lost
	w.lastUpdate = w.lastUpdate.Add(time.Duration(elapsed) * w.bucketSize)
}

// WindowStore keeps one WindowCounter per key, for example per user.
// When maxKeys is reached an arbitrary key is evicted.
//
// Example usage:
//
//	recent := cache.NewWindowStore(time.Hour, 12, 100000)
//	n := recent.Increment(userID) // swipes in the last hour, this one included
//	removed := recent.CleanupInactive()
type WindowStore struct {
	mu         sync.RWMutex
	counters   map[string]*WindowCounter
	window     time.Duration
	numBuckets int
	maxKeys    int
	now        func() time.Time
}

// NewWindowStore creates a store. maxKeys <= 0 means unlimited.
func NewWindowStore(window time.Duration, numBuckets, maxKeys int) *WindowStore {
	return &WindowStore{
		counters:   make(map[string]*WindowCounter),
		window:     window,
		numBuckets: numBuckets,
		maxKeys:    maxKeys,
		now:        time.Now,
	}
}

// Increment records one event for key and returns the count in the window,
// including this event.
func (s *WindowStore) Increment(key string) int64 {
	return s.counter(key).Add(1)
}

// Count returns the count for key, 0 if unknown.
func (s *WindowStore) Count(key string) int64 {
	s.mu.RLock()
	c, ok := s.counters[key]
	s.mu.RUnlock()
	if !ok {
		return 0
	}
	return c.Count()
}

// Remove drops the counter for key.
func (s *WindowStore) Remove(key string) {
	s.mu.Lock()
	delete(s.counters, key)
	s.mu.Unlock()
}

// Len returns the number of tracked keys.
func (s *WindowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counters)
}

// CleanupInactive drops counters with nothing left in the window.
func (s *WindowStore) CleanupInactive() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, c := range s.counters {
		if c.Count() == 0 {
			delete(s.counters, key)
			removed++
		}
	}
	return removed
}

func (s *WindowStore) counter(key string) *WindowCounter {
	s.mu.RLock()
	c, ok := s.counters[key]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok = s.counters[key]; ok {
		return c
	}
	if s.maxKeys > 0 && len(s.counters) >= s.maxKeys {
		for k := range s.counters {
			delete(s.counters, k)
			break
		}
	}
	c = newWindowCounter(s.window, s.numBuckets, s.now)
	s.counters[key] = c
	return c
}
