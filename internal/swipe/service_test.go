// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package swipe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/lovesync/internal/config"
	"github.com/tomtom215/lovesync/internal/directory"
	"github.com/tomtom215/lovesync/internal/eventprocessor"
	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/preference"
	"github.com/tomtom215/lovesync/internal/storage"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*eventprocessor.Event
}

func (p *recordingPublisher) PublishEvent(_ context.Context, e *eventprocessor.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Topic
	}
	return out
}

// failingPrefs rejects every update.
type failingPrefs struct{}

func (failingPrefs) ApplyDelta(context.Context, string, models.Delta, preference.Source) (*models.PreferenceVector, error) {
	return nil, fmt.Errorf("%w: breaker open", models.ErrUnavailable)
}

type fixture struct {
	store *storage.Store
	dir   *directory.Directory
	prefs *preference.Store
	pub   *recordingPublisher
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	dir := directory.New(store, 25)
	prefs, err := preference.NewStore(store, config.PreferenceConfig{Alpha: 0.15}, nil)
	if err != nil {
		t.Fatal(err)
	}
	pub := &recordingPublisher{}
	svc := NewService(store, dir, prefs, config.SwipeConfig{
		RecentWindow:    time.Hour,
		RecentBuckets:   12,
		MaxTrackedUsers: 100,
	}, pub)

	ctx := context.Background()
	for _, u := range []*models.User{
		{ID: "alice", Name: "Alice", Age: 29, Interests: []string{"Reading"}},
		{ID: "bob", Name: "Bob", Age: 31, Attributes: map[string]float64{"hiking": 1, "art": 0.5}},
		{ID: "carol", Name: "Carol", Age: 27, Interests: []string{"Cooking"}},
	} {
		if _, err := dir.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s) error = %v", u.ID, err)
		}
	}

	return &fixture{store: store, dir: dir, prefs: prefs, pub: pub, svc: svc}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestService_Ingest_AppliesDelta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	outcome, err := f.svc.Ingest(ctx, Request{UserID: "alice", TargetID: "bob", Direction: "like"})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if outcome != OutcomeApplied {
		t.Errorf("outcome = %s, want applied", outcome)
	}

	vec, _ := f.prefs.Get(ctx, "alice")
	want := map[string]float64{"reading": 0.425, "hiking": 0.15, "art": 0.075}
	for k, w := range want {
		if !approx(vec.Weights[k], w) {
			t.Errorf("Weights[%s] = %v, want %v", k, vec.Weights[k], w)
		}
	}

	ev, err := f.store.GetSwipe(ctx, "alice", "bob")
	if err != nil || ev.Direction != models.DirectionLike || ev.Timestamp.IsZero() {
		t.Errorf("recorded swipe = %+v, %v", ev, err)
	}
	if got := f.pub.topics(); len(got) != 1 || got[0] != eventprocessor.TopicSwipeRecorded {
		t.Errorf("published topics = %v", got)
	}
}

func TestService_Ingest_DuplicateIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := Request{UserID: "alice", TargetID: "bob", Direction: "like"}

	if _, err := f.svc.Ingest(ctx, req); err != nil {
		t.Fatal(err)
	}
	once, _ := f.prefs.Get(ctx, "alice")

	outcome, err := f.svc.Ingest(ctx, req)
	if err != nil {
		t.Fatalf("second Ingest() error = %v", err)
	}
	if outcome != OutcomeDuplicate {
		t.Errorf("outcome = %s, want duplicate", outcome)
	}

	twice, _ := f.prefs.Get(ctx, "alice")
	if twice.Version != once.Version || len(twice.Weights) != len(once.Weights) {
		t.Fatalf("duplicate changed vector: %+v vs %+v", twice, once)
	}
	for k, w := range once.Weights {
		if twice.Weights[k] != w {
			t.Errorf("Weights[%s] = %v, want %v", k, twice.Weights[k], w)
		}
	}
}

func TestService_OnRecorded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var notified []string
	f.svc.OnRecorded(func(userID string) { notified = append(notified, userID) })

	req := Request{UserID: "alice", TargetID: "bob", Direction: "like"}
	_, _ = f.svc.Ingest(ctx, req)
	_, _ = f.svc.Ingest(ctx, req)
	req.Direction = "pass"
	_, _ = f.svc.Ingest(ctx, req)

	if len(notified) != 2 || notified[0] != "alice" || notified[1] != "alice" {
		t.Errorf("hook calls = %v, want one per applied or overwritten swipe", notified)
	}
}

func TestService_Ingest_DirectionChangeOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Ingest(ctx, Request{UserID: "alice", TargetID: "bob", Direction: "like"}); err != nil {
		t.Fatal(err)
	}
	outcome, err := f.svc.Ingest(ctx, Request{UserID: "alice", TargetID: "bob", Direction: "PASS"})
	if err != nil {
		t.Fatalf("Ingest(pass) error = %v", err)
	}
	if outcome != OutcomeOverwritten {
		t.Errorf("outcome = %s, want overwritten", outcome)
	}

	vec, _ := f.prefs.Get(ctx, "alice")
	if vec.Version != 2 {
		t.Errorf("Version = %d, want 2", vec.Version)
	}
	// second swipe in the window halves the magnitude: 0.15*0.85 - 0.5*0.15
	if !approx(vec.Weights["hiking"], 0.0525) {
		t.Errorf("hiking = %v, want 0.0525", vec.Weights["hiking"])
	}

	history, err := f.svc.History(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Direction != models.DirectionPass {
		t.Errorf("History() = %+v", history)
	}
}

func TestService_Ingest_Errors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"empty user", Request{TargetID: "bob", Direction: "like"}, models.ErrInvalidInput},
		{"self swipe", Request{UserID: "alice", TargetID: "alice", Direction: "like"}, models.ErrInvalidInput},
		{"bad direction", Request{UserID: "alice", TargetID: "bob", Direction: "superlike"}, models.ErrInvalidInput},
		{"unknown target", Request{UserID: "alice", TargetID: "zed", Direction: "like"}, models.ErrNotFound},
		{"unknown swiper", Request{UserID: "zed", TargetID: "bob", Direction: "pass"}, models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.svc.Ingest(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Errorf("Ingest() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestService_Ingest_RollsBackOnFailedUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewService(f.store, f.dir, failingPrefs{}, config.SwipeConfig{}, nil)

	if _, err := svc.Ingest(ctx, Request{UserID: "alice", TargetID: "carol", Direction: "like"}); !errors.Is(err, models.ErrUnavailable) {
		t.Fatalf("Ingest() error = %v, want ErrUnavailable", err)
	}
	if _, err := f.store.GetSwipe(ctx, "alice", "carol"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("swipe left behind after failed update: %v", err)
	}
	if n := svc.recent.Count("alice"); n != 0 {
		t.Errorf("recent count after failed update = %d, want 0", n)
	}

	// a retry against a healthy store applies exactly once
	if outcome, err := f.svc.Ingest(ctx, Request{UserID: "alice", TargetID: "carol", Direction: "like"}); err != nil || outcome != OutcomeApplied {
		t.Errorf("retry = %s, %v", outcome, err)
	}
}

func TestService_Ingest_FailedUpdateDoesNotDampenNextSwipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	healthy := f.svc.prefs
	f.svc.prefs = failingPrefs{}
	if _, err := f.svc.Ingest(ctx, Request{UserID: "alice", TargetID: "carol", Direction: "pass"}); !errors.Is(err, models.ErrUnavailable) {
		t.Fatalf("Ingest() error = %v, want ErrUnavailable", err)
	}
	f.svc.prefs = healthy

	if _, err := f.svc.Ingest(ctx, Request{UserID: "alice", TargetID: "bob", Direction: "like"}); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	// Undampened: the like is the only applied swipe in the window.
	vec, _ := f.prefs.Get(ctx, "alice")
	if !approx(vec.Weights["hiking"], 0.15) || !approx(vec.Weights["art"], 0.075) {
		t.Errorf("Weights = %v, want full-strength delta", vec.Weights)
	}
	if n := f.svc.recent.Count("alice"); n != 1 {
		t.Errorf("recent count = %d, want 1", n)
	}
}

func TestService_Ingest_ConcurrentDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := f.svc.Ingest(ctx, Request{UserID: "alice", TargetID: "bob", Direction: "like"})
			if err != nil {
				t.Error(err)
				return
			}
			if outcome == OutcomeApplied {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if applied != 1 {
		t.Errorf("applied %d times, want 1", applied)
	}
	vec, _ := f.prefs.Get(ctx, "alice")
	if vec.Version != 1 {
		t.Errorf("Version = %d, want 1", vec.Version)
	}
}

func TestDelta(t *testing.T) {
	target := &models.User{Attributes: map[string]float64{"hiking": 1, "art": -0.5}}

	tests := []struct {
		name      string
		direction models.Direction
		count     int64
		want      models.Delta
	}{
		{"like first swipe", models.DirectionLike, 1, models.Delta{"hiking": 1, "art": -0.5}},
		{"pass dampened", models.DirectionPass, 4, models.Delta{"hiking": -0.25, "art": 0.125}},
		{"zero count treated as one", models.DirectionLike, 0, models.Delta{"hiking": 1, "art": -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delta(target, tt.direction, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("Delta() = %v, want %v", got, tt.want)
			}
			for k, w := range tt.want {
				if !approx(got[k], w) {
					t.Errorf("Delta()[%s] = %v, want %v", k, got[k], w)
				}
			}
		})
	}
}

func TestService_History_UnknownUser(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.History(context.Background(), "zed"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("History(zed) error = %v", err)
	}
	history, err := f.svc.History(context.Background(), "carol")
	if err != nil || history == nil || len(history) != 0 {
		t.Errorf("History(carol) = %v, %v", history, err)
	}
}
