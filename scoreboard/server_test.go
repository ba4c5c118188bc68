package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"snake-arcade/game/types"
	"snake-arcade/store"
)

type brokenStore struct{ store.Store }

func (brokenStore) Get(ctx context.Context, key string) (int, bool, error) {
	return 0, false, errors.New("disk on fire")
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, New(store.NewMemoryStore()).Handler(), "/health")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"ok":true}` {
		t.Errorf("Unexpected response %d %q", rec.Code, rec.Body.String())
	}
}

func TestHighScore(t *testing.T) {
	st := store.NewMemoryStore()
	h := New(st).Handler()

	rec := get(t, h, "/highscore")
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || body["highScore"] != 0 {
		t.Errorf("Expected 0 before any game, got %d %v", rec.Code, body)
	}

	if err := st.Set(context.Background(), types.HighScoreKey, 130); err != nil {
		t.Fatal(err)
	}
	rec = get(t, h, "/highscore")
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["highScore"] != 130 {
		t.Errorf("Expected 130, got %v", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Unexpected content type %q", ct)
	}
}

func TestHighScoreStoreError(t *testing.T) {
	rec := get(t, New(brokenStore{}).Handler(), "/highscore")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	if err := New(store.NewMemoryStore()).Shutdown(context.Background()); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
}
