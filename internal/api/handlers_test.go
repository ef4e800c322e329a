// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/tomtom215/lovesync/docs"
	"github.com/tomtom215/lovesync/internal/compat"
	"github.com/tomtom215/lovesync/internal/config"
	"github.com/tomtom215/lovesync/internal/conversation"
	"github.com/tomtom215/lovesync/internal/directory"
	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/preference"
	"github.com/tomtom215/lovesync/internal/recommend"
	"github.com/tomtom215/lovesync/internal/storage"
	"github.com/tomtom215/lovesync/internal/swipe"
)

type testServer struct {
	handler http.Handler
	dir     *directory.Directory
	prefs   *preference.Store
	conv    *conversation.Manager
}

// newTestServer wires the real components over in-memory Badger.
func newTestServer(t *testing.T) *testServer {
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
	swipes := swipe.NewService(store, dir, prefs, config.SwipeConfig{
		RecentWindow:    time.Hour,
		RecentBuckets:   12,
		MaxTrackedUsers: 100,
	}, nil)
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), dir, prefs, swipes)
	if err != nil {
		t.Fatal(err)
	}
	conv, err := conversation.NewManager(dir, prefs, config.ConversationConfig{MaxFollowUps: 2}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	prefs.OnUpdate(engine.Invalidate)
	swipes.OnRecorded(engine.ForgetRankings)
	dir.OnDelete(prefs.Forget)
	dir.OnDelete(swipes.Forget)
	dir.OnDelete(func(id string) { conv.ForgetUser(id) })

	h := NewHandler(Services{
		Users:         dir,
		Swipes:        swipes,
		Preferences:   prefs,
		Ranker:        engine,
		Compatibility: compat.NewService(prefs),
		Conversations: conv,
		Readiness: map[string]ReadinessCheck{
			"storage": store.Ping,
		},
	})
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true

	ts := &testServer{
		handler: NewRouter(h, cfg).SetupChi(),
		dir:     dir,
		prefs:   prefs,
		conv:    conv,
	}

	ctx := context.Background()
	for _, u := range []*models.User{
		{ID: "alice", Name: "Alice", Age: 30, Location: models.Location{Lat: 52.52, Lon: 13.405}, Interests: []string{"hiking", "art"}},
		{ID: "bob", Name: "Bob", Age: 28, Location: models.Location{Lat: 52.39, Lon: 13.06}, Interests: []string{"hiking"}},
		{ID: "carol", Name: "Carol", Age: 45, Location: models.Location{Lat: 48.137, Lon: 11.575}, Interests: []string{"reading"}},
	} {
		if _, err := dir.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s) error = %v", u.ID, err)
		}
	}
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	resp := decode[models.APIResponse](t, rec)
	if resp.Status != "error" || resp.Error == nil || resp.Error.Code != code {
		t.Errorf("error envelope = %s, want code %s", rec.Body.String(), code)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("error envelope is missing the request ID")
	}
}

func TestSwipe(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/swipe", SwipeRequest{UserID: "alice", TargetID: "bob", Direction: "like"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	vec, _ := ts.prefs.Get(context.Background(), "alice")
	if vec.Version != 1 {
		t.Errorf("preference version = %d, want 1", vec.Version)
	}

	// repeated swipe is accepted and changes nothing
	rec = ts.do(t, http.MethodPost, "/swipe", SwipeRequest{UserID: "alice", TargetID: "bob", Direction: "like"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("repeat status = %d", rec.Code)
	}
	again, _ := ts.prefs.Get(context.Background(), "alice")
	if again.Version != 1 {
		t.Errorf("repeat swipe changed the vector: version %d", again.Version)
	}
}

func TestSwipe_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		body   interface{}
		status int
		code   string
	}{
		{"unknown target", SwipeRequest{UserID: "alice", TargetID: "zed", Direction: "like"}, http.StatusNotFound, ErrCodeNotFound},
		{"unknown swiper", SwipeRequest{UserID: "zed", TargetID: "bob", Direction: "like"}, http.StatusNotFound, ErrCodeNotFound},
		{"bad direction", SwipeRequest{UserID: "alice", TargetID: "bob", Direction: "maybe"}, http.StatusBadRequest, ErrCodeBadRequest},
		{"missing direction", SwipeRequest{UserID: "alice", TargetID: "bob"}, http.StatusBadRequest, ErrCodeValidation},
		{"self swipe", SwipeRequest{UserID: "alice", TargetID: "alice", Direction: "like"}, http.StatusBadRequest, ErrCodeValidation},
		{"malformed json", `{"userId":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown field", `{"userId":"alice","targetId":"bob","direction":"like","superlike":true}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"empty body", "", http.StatusBadRequest, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertError(t, ts.do(t, http.MethodPost, "/swipe", tt.body), tt.status, tt.code)
		})
	}
}

func TestRecommendations(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/recommendations/alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	recs := decode[[]recommend.Recommendation](t, rec)
	if len(recs) != 2 || recs[0].TargetID != "bob" || recs[1].TargetID != "carol" {
		t.Fatalf("recommendations = %+v, want bob then carol", recs)
	}
	if recs[1].Score != 0.5 {
		t.Errorf("score with no shared attributes = %v, want 0.5", recs[1].Score)
	}
	if !strings.Contains(rec.Body.String(), `"targetId"`) {
		t.Errorf("body uses unexpected field names: %s", rec.Body.String())
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"?maxDistance=50", []string{"bob"}},
		{"?ageMin=40", []string{"carol"}},
		{"?ageMax=29", []string{"bob"}},
		{"?limit=1", []string{"bob"}},
		{"?ageMin=50", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, "/recommendations/alice"+tt.query, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			got := decode[[]recommend.Recommendation](t, rec)
			if len(got) != len(tt.want) {
				t.Fatalf("got %+v, want %v", got, tt.want)
			}
			for i, id := range tt.want {
				if got[i].TargetID != id {
					t.Errorf("got[%d] = %s, want %s", i, got[i].TargetID, id)
				}
			}
		})
	}
}

func TestRecommendations_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/recommendations/zed", http.StatusNotFound, ErrCodeNotFound},
		{"/recommendations/alice?ageMin=abc", http.StatusBadRequest, ErrCodeBadRequest},
		{"/recommendations/alice?ageMin=40&ageMax=30", http.StatusBadRequest, ErrCodeBadRequest},
		{"/recommendations/alice?maxDistance=-1", http.StatusBadRequest, ErrCodeBadRequest},
		{"/recommendations/alice?maxDistance=NaN", http.StatusBadRequest, ErrCodeBadRequest},
		{"/recommendations/alice?limit=-5", http.StatusBadRequest, ErrCodeBadRequest},
		{"/recommendations/bad%7Cid", http.StatusBadRequest, ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assertError(t, ts.do(t, http.MethodGet, tt.path, nil), tt.status, tt.code)
		})
	}
}

func TestRecommendations_SavedDiscoverySettings(t *testing.T) {
	ts := newTestServer(t)

	ids := func(t *testing.T, path string) []string {
		t.Helper()
		rec := ts.do(t, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, body %s", path, rec.Code, rec.Body.String())
		}
		out := []string{}
		for _, r := range decode[[]recommend.Recommendation](t, rec) {
			out = append(out, r.TargetID)
		}
		return out
	}

	rec := ts.do(t, http.MethodGet, "/users/alice/discovery", nil)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "{}" {
		t.Fatalf("unset discovery = %d %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodPut, "/users/alice/discovery", `{"ageMin":22,"ageMax":35,"maxDistance":800}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body.String())
	}
	saved := decode[models.Discovery](t, ts.do(t, http.MethodGet, "/users/alice/discovery", nil))
	if saved.AgeMin == nil || *saved.AgeMin != 22 || saved.AgeMax == nil || *saved.AgeMax != 35 ||
		saved.MaxDistanceKm == nil || *saved.MaxDistanceKm != 800 {
		t.Fatalf("saved discovery = %+v", saved)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"bob"}},
		{"?ageMin=40", []string{"carol"}},
		{"?maxDistance=10", []string{}},
	}
	for _, tt := range tests {
		t.Run("query"+tt.query, func(t *testing.T) {
			got := ids(t, "/recommendations/alice"+tt.query)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("recommendations = %v, want %v", got, tt.want)
			}
		})
	}

	// An empty body clears the saved filters.
	if rec := ts.do(t, http.MethodPut, "/users/alice/discovery", `{}`); rec.Code != http.StatusOK {
		t.Fatalf("clear status = %d", rec.Code)
	}
	if got := ids(t, "/recommendations/alice"); strings.Join(got, ",") != "bob,carol" {
		t.Errorf("recommendations after clear = %v", got)
	}
}

func TestDiscovery_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{"inverted age range", http.MethodPut, "/users/alice/discovery", `{"ageMin":40,"ageMax":30}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"age below minimum", http.MethodPut, "/users/alice/discovery", `{"ageMin":16}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"zero distance", http.MethodPut, "/users/alice/discovery", `{"maxDistance":0}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown field", http.MethodPut, "/users/alice/discovery", `{"radius":5}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown user put", http.MethodPut, "/users/zed/discovery", `{"maxDistance":5}`, http.StatusNotFound, ErrCodeNotFound},
		{"unknown user get", http.MethodGet, "/users/zed/discovery", nil, http.StatusNotFound, ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertError(t, ts.do(t, tt.method, tt.path, tt.body), tt.status, tt.code)
		})
	}

	// invalid create-time settings are rejected too
	rec := ts.do(t, http.MethodPost, "/users", `{"name":"Dan","age":30,"location":{"lat":1,"lon":1},"discovery":{"ageMin":50,"ageMax":20}}`)
	assertError(t, rec, http.StatusBadRequest, ErrCodeBadRequest)
}

func TestRecommendations_SwipedTargetsDisappear(t *testing.T) {
	ts := newTestServer(t)

	_ = ts.do(t, http.MethodGet, "/recommendations/alice", nil)
	if rec := ts.do(t, http.MethodPost, "/swipe", SwipeRequest{UserID: "alice", TargetID: "carol", Direction: "pass"}); rec.Code != http.StatusNoContent {
		t.Fatalf("swipe status = %d", rec.Code)
	}

	recs := decode[[]recommend.Recommendation](t, ts.do(t, http.MethodGet, "/recommendations/alice", nil))
	if len(recs) != 1 || recs[0].TargetID != "bob" {
		t.Errorf("recommendations after swipe = %+v, want only bob", recs)
	}
}

func TestCompatibility(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/compatibility?a=alice&b=carol", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"score":0.5}` {
		t.Errorf("body = %s", body)
	}

	ab := decode[CompatibilityResponse](t, ts.do(t, http.MethodGet, "/compatibility?a=alice&b=bob", nil))
	ba := decode[CompatibilityResponse](t, ts.do(t, http.MethodGet, "/compatibility?a=bob&b=alice", nil))
	if ab.Score != ba.Score || ab.Score <= 0.5 {
		t.Errorf("scores = %v / %v, want symmetric and above neutral", ab.Score, ba.Score)
	}

	explained := decode[compat.Explanation](t, ts.do(t, http.MethodGet, "/compatibility/explain?a=alice&b=bob", nil))
	if explained.Score != ab.Score || len(explained.Shared) != 1 || explained.Shared[0].Attribute != "hiking" {
		t.Errorf("explanation = %+v", explained)
	}

	assertError(t, ts.do(t, http.MethodGet, "/compatibility?a=alice", nil), http.StatusBadRequest, ErrCodeBadRequest)
	assertError(t, ts.do(t, http.MethodGet, "/compatibility?a=alice&b=zed", nil), http.StatusNotFound, ErrCodeNotFound)
	assertError(t, ts.do(t, http.MethodGet, "/compatibility/explain?a=alice&b=bob&limit=0", nil), http.StatusBadRequest, ErrCodeBadRequest)
}

func TestConversationFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/conversation", StartConversationRequest{UserID: "alice"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status = %d, body %s", rec.Code, rec.Body.String())
	}
	step := decode[conversation.Step](t, rec)
	if step.Status != conversation.StateAwaitingAnswer || step.Question == nil || step.SessionID == "" {
		t.Fatalf("first step = %+v", step)
	}
	if rec.Header().Get("Location") != "/conversation/"+step.SessionID {
		t.Errorf("Location = %q", rec.Header().Get("Location"))
	}

	answerPath := "/conversation/" + step.SessionID + "/answer"
	assertError(t, ts.do(t, http.MethodPost, answerPath, AnswerRequest{Text: " "}), http.StatusBadRequest, ErrCodeBadRequest)

	rec = ts.do(t, http.MethodPost, answerPath, AnswerRequest{Text: "2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("answer status = %d, body %s", rec.Code, rec.Body.String())
	}
	next := decode[conversation.Step](t, rec)
	if next.Status != conversation.StateAwaitingAnswer || next.Question == nil || next.Question.ID == step.Question.ID {
		t.Errorf("next step = %+v", next)
	}

	vec, _ := ts.prefs.Get(context.Background(), "alice")
	if vec.Weights["long_term"] <= 0 {
		t.Errorf("answer did not reach the preference store: %v", vec.Weights)
	}

	sess := decode[conversation.Session](t, ts.do(t, http.MethodGet, "/conversation/"+step.SessionID, nil))
	if len(sess.Turns) != 1 || sess.UserID != "alice" {
		t.Errorf("snapshot = %+v", sess)
	}

	if rec := ts.do(t, http.MethodDelete, "/conversation/"+step.SessionID, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("end status = %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodDelete, "/conversation/"+step.SessionID, nil); rec.Code != http.StatusNoContent {
		t.Errorf("second end status = %d, want idempotent 204", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, answerPath, AnswerRequest{Text: "outgoing"})
	assertError(t, rec, http.StatusConflict, ErrCodeConflict)
}

func TestConversation_CompletesWithStatusOnly(t *testing.T) {
	ts := newTestServer(t)

	step := decode[conversation.Step](t, ts.do(t, http.MethodPost, "/conversation", StartConversationRequest{UserID: "bob"}))
	answers := map[string]string{
		"relationship_goal": "1",
		"personality":       "funny and outgoing",
		"interests":         "hiking",
		"first_date":        "coffee",
		"communication":     "texting",
		"deal_breakers":     "smoking",
		"fitness":           "4",
		"followup_passions": "music",
		"followup_weekend":  "hiking",
		"followup_laugh":    "jokes",
	}

	var rec *httptest.ResponseRecorder
	for i := 0; step.Status != conversation.StateCompleted; i++ {
		if i > len(answers) {
			t.Fatal("conversation did not complete")
		}
		rec = ts.do(t, http.MethodPost, "/conversation/"+step.SessionID+"/answer", AnswerRequest{Text: answers[step.Question.ID]})
		if rec.Code != http.StatusOK {
			t.Fatalf("answer status = %d, body %s", rec.Code, rec.Body.String())
		}
		step = decode[conversation.Step](t, rec)
	}

	var raw map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &raw)
	if raw["status"] != "completed" {
		t.Errorf("final body = %s", rec.Body.String())
	}
	if _, ok := raw["question"]; ok {
		t.Errorf("completed response must not carry a question: %s", rec.Body.String())
	}
}

func TestConversation_Errors(t *testing.T) {
	ts := newTestServer(t)

	assertError(t, ts.do(t, http.MethodPost, "/conversation", StartConversationRequest{UserID: "zed"}), http.StatusNotFound, ErrCodeNotFound)
	assertError(t, ts.do(t, http.MethodPost, "/conversation", StartConversationRequest{}), http.StatusBadRequest, ErrCodeValidation)
	assertError(t, ts.do(t, http.MethodPost, "/conversation/nope/answer", AnswerRequest{Text: "hi"}), http.StatusNotFound, ErrCodeNotFound)
	assertError(t, ts.do(t, http.MethodGet, "/conversation/nope", nil), http.StatusNotFound, ErrCodeNotFound)
}

func TestUsers(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/users", CreateUserRequest{
		Name: "Dave", Age: 33, Location: models.Location{Lat: 52.5, Lon: 13.4}, Interests: []string{"Art"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decode[models.User](t, rec)
	if created.ID == "" || rec.Header().Get("Location") != "/users/"+created.ID {
		t.Errorf("created = %+v, Location = %q", created, rec.Header().Get("Location"))
	}

	got := decode[models.User](t, ts.do(t, http.MethodGet, "/users/"+created.ID, nil))
	if got.Name != "Dave" {
		t.Errorf("GET user = %+v", got)
	}

	vec := decode[models.PreferenceVector](t, ts.do(t, http.MethodGet, "/users/"+created.ID+"/preferences", nil))
	if vec.Weights["art"] != 0.5 {
		t.Errorf("seeded weights = %v", vec.Weights)
	}

	assertError(t, ts.do(t, http.MethodPost, "/users", CreateUserRequest{ID: "alice", Name: "Other", Age: 40}), http.StatusConflict, ErrCodeConflict)
	assertError(t, ts.do(t, http.MethodPost, "/users", CreateUserRequest{Name: "Kid", Age: 12}), http.StatusBadRequest, ErrCodeValidation)
	assertError(t, ts.do(t, http.MethodGet, "/users/zed", nil), http.StatusNotFound, ErrCodeNotFound)
}

func TestDeleteUser_CascadesToRankingsAndSessions(t *testing.T) {
	ts := newTestServer(t)

	step := decode[conversation.Step](t, ts.do(t, http.MethodPost, "/conversation", StartConversationRequest{UserID: "bob"}))
	_ = ts.do(t, http.MethodGet, "/recommendations/alice", nil)

	if rec := ts.do(t, http.MethodDelete, "/users/bob", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, body %s", rec.Code, rec.Body.String())
	}

	assertError(t, ts.do(t, http.MethodGet, "/users/bob", nil), http.StatusNotFound, ErrCodeNotFound)
	assertError(t, ts.do(t, http.MethodGet, "/conversation/"+step.SessionID, nil), http.StatusNotFound, ErrCodeNotFound)

	recs := decode[[]recommend.Recommendation](t, ts.do(t, http.MethodGet, "/recommendations/alice", nil))
	for _, r := range recs {
		if r.TargetID == "bob" {
			t.Errorf("deleted user still recommended: %+v", recs)
		}
	}
	assertError(t, ts.do(t, http.MethodDelete, "/users/bob", nil), http.StatusNotFound, ErrCodeNotFound)
}

func TestResetAndHistory(t *testing.T) {
	ts := newTestServer(t)

	_ = ts.do(t, http.MethodPost, "/swipe", SwipeRequest{UserID: "alice", TargetID: "carol", Direction: "like"})

	history := decode[[]models.SwipeEvent](t, ts.do(t, http.MethodGet, "/users/alice/swipes", nil))
	if len(history) != 1 || history[0].TargetID != "carol" || history[0].Direction != models.DirectionLike {
		t.Errorf("history = %+v", history)
	}
	empty := ts.do(t, http.MethodGet, "/users/bob/swipes", nil)
	if strings.TrimSpace(empty.Body.String()) != "[]" {
		t.Errorf("empty history body = %s", empty.Body.String())
	}

	if rec := ts.do(t, http.MethodPost, "/users/alice/reset-ai", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("reset status = %d", rec.Code)
	}
	vec, _ := ts.prefs.Get(context.Background(), "alice")
	if _, learned := vec.Weights["reading"]; learned || vec.Weights["hiking"] != 0.5 {
		t.Errorf("weights after reset = %v", vec.Weights)
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready", "/metrics"} {
		rec := ts.do(t, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, body %s", path, rec.Code, rec.Body.String())
		}
	}

	health := decode[HealthStatus](t, ts.do(t, http.MethodGet, "/health", nil))
	if health.Users != 3 {
		t.Errorf("health users = %d, want 3", health.Users)
	}
}

func TestHealthReady_FailingCheck(t *testing.T) {
	h := NewHandler(Services{
		Readiness: map[string]ReadinessCheck{
			"storage": func(context.Context) error { return models.ErrUnavailable },
			"events":  func(context.Context) error { return nil },
		},
	})
	rec := httptest.NewRecorder()
	h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	status := decode[ReadinessStatus](t, rec)
	if status.Checks["events"] != "ok" || status.Checks["storage"] == "ok" {
		t.Errorf("checks = %v", status.Checks)
	}
}

func TestRouting_NotFoundAndMethod(t *testing.T) {
	ts := newTestServer(t)

	assertError(t, ts.do(t, http.MethodGet, "/nope", nil), http.StatusNotFound, ErrCodeNotFound)
	assertError(t, ts.do(t, http.MethodGet, "/swipe", nil), http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed)

	rec := ts.do(t, http.MethodGet, "/health/live", nil)
	if rec.Header().Get("X-Request-ID") == "" || rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("missing standard headers: %v", rec.Header())
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	router := NewRouter(NewHandler(Services{}), cfg).SetupChi()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		router.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/compatibility", nil))
	}
	assertError(t, last, http.StatusTooManyRequests, ErrCodeRateLimitExceeded)
}

func TestSwaggerDocs(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/swagger/doc.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rec.Code)
	}
	var doc struct {
		Swagger string                     `json:"swagger"`
		Info    struct{ Title string }     `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.Info.Title != "LoveSync API" {
		t.Errorf("swagger = %q, title = %q", doc.Swagger, doc.Info.Title)
	}
	for _, path := range []string{
		"/swipe",
		"/recommendations/{userId}",
		"/compatibility",
		"/conversation/{sessionId}/answer",
		"/users/{userId}/discovery",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("doc.json missing path %s", path)
		}
	}

	if rec := ts.do(t, http.MethodGet, "/swagger/index.html", nil); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Errorf("index.html status = %d", rec.Code)
	}
}
