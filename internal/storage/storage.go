package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Logical keys. The original browser build used the same localStorage
// names, so imported backups keep working across versions.
const (
	KeyCommits   = "commits"
	KeyTasks     = "tasks"
	KeyStreak    = "commitflow_streak"
	KeyLastDate  = "commitflow_last_date"
	KeyActivity  = "commitflow_activity"
	KeyPlaylists = "playlists"
	KeyUsername  = "username"
	KeyTheme     = "theme"
)

// ErrWrite marks a persistence failure. The in-memory model is never
// left ahead of the persisted one: callers re-read on every operation.
var ErrWrite = errors.New("storage: write failed")

// Store is the key-value collaborator everything persists through.
// Get reports absence via the bool, not an error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// GetJSON loads and decodes the value at key into out. Absent keys and
// corrupt payloads both leave out at the provided default so the app
// can always boot from damaged storage.
func GetJSON(s Store, key string, out any) error {
	raw, ok, err := s.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Corrupt payload, fall back to the zero value.
		return nil
	}
	return nil
}

// SetJSON encodes v and persists it at key.
func SetJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(key, raw); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, key, err)
	}
	return nil
}

// GetString loads a plain string value, returning def when the key is
// absent or unreadable.
func GetString(s Store, key, def string) string {
	var v string
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return def
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		// Older exports stored bare strings without JSON quoting.
		return string(raw)
	}
	if v == "" {
		return def
	}
	return v
}

// GetInt loads an integer value, coercing absence and junk to def.
func GetInt(s Store, key string, def int) int {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return def
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}
