// Package store persists small integer values such as the best score.
//
// Implementations:
//   - memory: process-local map, used by tests and `STORE=memory`.
//   - file:   a JSON object on disk, rewritten on every Set.
//   - sqlite: a single `kv` table in a SQLite database.
package store

import (
	"context"
	"fmt"
	"strings"
)

// Store is the key-value slot interface used for the high score.
// A missing key is reported with ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value int, ok bool, err error)
	Set(ctx context.Context, key string, value int) error
	Close() error
}

// Open builds the Store named by kind ("memory", "file" or "sqlite").
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(kind) {
	case "", "file":
		return NewFileStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}
