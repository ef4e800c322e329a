// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package directory

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/storage"
)

func newTestDirectory(t *testing.T) (*Directory, *storage.Store) {
	t.Helper()
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	d := New(store, 25)
	d.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return d, store
}

func testUser(id string, lat, lon float64) *models.User {
	return &models.User{
		ID:        id,
		Name:      "Test " + id,
		Age:       30,
		Location:  models.Location{Lat: lat, Lon: lon},
		Interests: []string{"Hiking", "Art"},
	}
}

func TestDirectory_Create(t *testing.T) {
	d, store := newTestDirectory(t)
	ctx := context.Background()

	before := d.PoolVersion()
	u, err := d.Create(ctx, testUser("alice", 52.52, 13.40))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.CreatedAt.IsZero() || !u.LastActiveAt.Equal(u.CreatedAt) {
		t.Errorf("timestamps not set: %+v", u)
	}
	if d.PoolVersion() == before {
		t.Error("PoolVersion not bumped on create")
	}

	pref, err := store.GetPreference(ctx, "alice")
	if err != nil {
		t.Fatalf("GetPreference() error = %v", err)
	}
	if pref.Weights["hiking"] != 0.5 || pref.Weights["art"] != 0.5 {
		t.Errorf("seed weights = %v", pref.Weights)
	}

	if _, err := d.Create(ctx, testUser("alice", 0, 0)); !errors.Is(err, models.ErrConflict) {
		t.Errorf("duplicate Create() error = %v, want ErrConflict", err)
	}
}

func TestDirectory_Create_SeedsFromAttributes(t *testing.T) {
	d, store := newTestDirectory(t)
	ctx := context.Background()

	u := testUser("bob", 52.4, 13.06)
	u.Interests = nil
	u.Attributes = map[string]float64{"hiking": 0.9, "art": -0.3}
	if _, err := d.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	pref, err := store.GetPreference(ctx, "bob")
	if err != nil {
		t.Fatalf("GetPreference() error = %v", err)
	}
	want := map[string]float64{"hiking": 0.45, "art": -0.15}
	if len(pref.Weights) != len(want) {
		t.Fatalf("seed weights = %v, want %v", pref.Weights, want)
	}
	for k, w := range want {
		if math.Abs(pref.Weights[k]-w) > 1e-9 {
			t.Errorf("seed weights[%s] = %v, want %v", k, pref.Weights[k], w)
		}
	}
}

func TestDirectory_Create_GeneratesID(t *testing.T) {
	d, _ := newTestDirectory(t)

	u, err := d.Create(context.Background(), testUser("", 0, 0))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(u.ID) != 36 {
		t.Errorf("generated ID = %q, want uuid", u.ID)
	}
}

func TestDirectory_Create_Invalid(t *testing.T) {
	d, _ := newTestDirectory(t)

	tests := []struct {
		name string
		user *models.User
	}{
		{"underage", &models.User{Name: "x", Age: 17}},
		{"missing name", &models.User{Age: 30}},
		{"bad latitude", &models.User{Name: "x", Age: 30, Location: models.Location{Lat: 91}}},
		{"bad id", &models.User{ID: "a:b", Name: "x", Age: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.Create(context.Background(), tt.user); !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("Create() error = %v, want ErrInvalidInput", err)
			}
		})
	}
	if d.Size() != 0 {
		t.Errorf("Size() = %d after invalid creates", d.Size())
	}
}

func TestDirectory_GetAndDelete(t *testing.T) {
	d, store := newTestDirectory(t)
	ctx := context.Background()

	if _, err := d.Create(ctx, testUser("bob", 0, 0)); err != nil {
		t.Fatal(err)
	}

	var deleted []string
	d.OnDelete(func(id string) { deleted = append(deleted, id) })

	got, err := d.Get(ctx, "bob")
	if err != nil || got.Name != "Test bob" {
		t.Fatalf("Get() = %+v, %v", got, err)
	}
	got.Name = "mutated"
	if again, _ := d.Get(ctx, "bob"); again.Name != "Test bob" {
		t.Error("Get() returned shared state")
	}

	if err := d.Delete(ctx, "bob"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := d.Get(ctx, "bob"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get() after delete error = %v", err)
	}
	if _, err := store.GetPreference(ctx, "bob"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("preference survived delete: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != "bob" {
		t.Errorf("OnDelete hooks = %v", deleted)
	}

	if err := d.Delete(ctx, "bob"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDirectory_Candidates(t *testing.T) {
	d, _ := newTestDirectory(t)
	ctx := context.Background()

	// Berlin, Potsdam (~27km), Munich (~500km)
	for _, u := range []*models.User{
		testUser("berlin", 52.52, 13.405),
		testUser("potsdam", 52.39, 13.065),
		testUser("munich", 48.137, 11.575),
	} {
		if _, err := d.Create(ctx, u); err != nil {
			t.Fatal(err)
		}
	}

	all := d.Candidates(ctx, "berlin", nil)
	if len(all) != 2 || all[0].ID != "munich" || all[1].ID != "potsdam" {
		t.Errorf("Candidates(nil) = %v", ids(all))
	}

	near := d.Candidates(ctx, "berlin", &GeoQuery{Lat: 52.52, Lon: 13.405, RadiusKm: 50})
	if len(near) != 1 || near[0].ID != "potsdam" {
		t.Errorf("Candidates(50km) = %v", ids(near))
	}
}

func TestDirectory_SetDiscovery(t *testing.T) {
	d, store := newTestDirectory(t)
	ctx := context.Background()
	if _, err := d.Create(ctx, testUser("alice", 52.52, 13.40)); err != nil {
		t.Fatal(err)
	}
	before := d.PoolVersion()

	minAge, maxAge, km := 22, 35, 25.0
	if _, err := d.SetDiscovery(ctx, "alice", &models.Discovery{AgeMin: &minAge, AgeMax: &maxAge, MaxDistanceKm: &km}); err != nil {
		t.Fatalf("SetDiscovery() error = %v", err)
	}

	got, _ := d.Get(ctx, "alice")
	if got.Discovery == nil || *got.Discovery.AgeMin != 22 || *got.Discovery.AgeMax != 35 || *got.Discovery.MaxDistanceKm != 25 {
		t.Errorf("in-memory discovery = %+v", got.Discovery)
	}
	stored, _ := store.GetUser(ctx, "alice")
	if stored.Discovery == nil || *stored.Discovery.MaxDistanceKm != 25 {
		t.Errorf("stored discovery = %+v", stored.Discovery)
	}
	if d.PoolVersion() != before {
		t.Error("SetDiscovery bumped the pool version")
	}

	// Clearing
	if _, err := d.SetDiscovery(ctx, "alice", &models.Discovery{}); err != nil {
		t.Fatalf("SetDiscovery(empty) error = %v", err)
	}
	if got, _ := d.Get(ctx, "alice"); got.Discovery != nil {
		t.Errorf("discovery after clear = %+v", got.Discovery)
	}

	tests := []struct {
		name     string
		id       string
		settings *models.Discovery
		want     error
	}{
		{"inverted age range", "alice", &models.Discovery{AgeMin: &maxAge, AgeMax: &minAge}, models.ErrInvalidInput},
		{"negative distance", "alice", &models.Discovery{MaxDistanceKm: floatPtr(-1)}, models.ErrInvalidInput},
		{"unknown user", "ghost", &models.Discovery{MaxDistanceKm: &km}, models.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.SetDiscovery(ctx, tt.id, tt.settings); !errors.Is(err, tt.want) {
				t.Errorf("SetDiscovery() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDirectory_Create_RejectsInvalidDiscovery(t *testing.T) {
	d, _ := newTestDirectory(t)

	u := testUser("alice", 0, 0)
	u.Discovery = &models.Discovery{AgeMin: intPtr(17)}
	if _, err := d.Create(context.Background(), u); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("Create() error = %v, want ErrInvalidInput", err)
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestDirectory_Touch(t *testing.T) {
	d, _ := newTestDirectory(t)
	ctx := context.Background()

	if _, err := d.Create(ctx, testUser("carol", 0, 0)); err != nil {
		t.Fatal(err)
	}
	version := d.PoolVersion()

	later := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if err := d.Touch(ctx, "carol", later); err != nil {
		t.Fatalf("Touch() error = %v", err)
	}
	if err := d.Touch(ctx, "carol", later.Add(-48*time.Hour)); err != nil {
		t.Fatalf("Touch(older) error = %v", err)
	}

	u, _ := d.Get(ctx, "carol")
	if !u.LastActiveAt.Equal(later) {
		t.Errorf("LastActiveAt = %v, want %v", u.LastActiveAt, later)
	}
	if d.PoolVersion() != version {
		t.Error("Touch must not bump PoolVersion")
	}

	if err := d.Touch(ctx, "ghost", later); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Touch(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestDirectory_Load(t *testing.T) {
	d, store := newTestDirectory(t)
	ctx := context.Background()

	if _, err := d.Create(ctx, testUser("dave", 10, 10)); err != nil {
		t.Fatal(err)
	}

	reloaded := New(store, 25)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Size() != 1 || !reloaded.Exists("dave") {
		t.Errorf("Load() size = %d", reloaded.Size())
	}
	near := reloaded.Candidates(ctx, "", &GeoQuery{Lat: 10, Lon: 10, RadiusKm: 1})
	if len(near) != 1 {
		t.Errorf("spatial index not rebuilt: %v", ids(near))
	}
}

func ids(users []*models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}
