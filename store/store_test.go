package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	fileStore, err := NewFileStore(filepath.Join(dir, "nested", "highscore.json"))
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "snake.db"))
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestGetMissingKey(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		v, ok, err := s.Get(ctx, "snakeHighScore")
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		if ok || v != 0 {
			t.Errorf("%s: expected missing key, got %d ok=%v", name, v, ok)
		}
	}
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		if err := s.Set(ctx, "snakeHighScore", 40); err != nil {
			t.Fatalf("%s: set: %v", name, err)
		}
		if err := s.Set(ctx, "snakeHighScore", 70); err != nil {
			t.Fatalf("%s: overwrite: %v", name, err)
		}
		v, ok, err := s.Get(ctx, "snakeHighScore")
		if err != nil || !ok || v != 70 {
			t.Errorf("%s: got %d ok=%v err=%v, want 70", name, v, ok, err)
		}
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "highscore.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "snakeHighScore", 120); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, _ := reopened.Get(ctx, "snakeHighScore")
	if !ok || v != 120 {
		t.Errorf("expected 120 after reopen, got %d ok=%v", v, ok)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path); err == nil {
		t.Error("expected decode error for corrupt file")
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "snake.db")

	s, err := NewSQLiteStore(dsn)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "snakeHighScore", 90); err != nil {
		t.Fatal(err)
	}
	s.Close()

	reopened, err := NewSQLiteStore(dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get(ctx, "snakeHighScore")
	if err != nil || !ok || v != 90 {
		t.Errorf("got %d ok=%v err=%v, want 90", v, ok, err)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open("redis", ""); err == nil {
		t.Error("expected error for unknown store kind")
	}
	s, err := Open("memory", "")
	if err != nil || s == nil {
		t.Errorf("memory store: %v", err)
	}
}
