package storage

import (
	"path/filepath"
	"testing"
)

func setupSQLite(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commitflow-test.sqlite")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := setupSQLite(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}

	if err := store.Set("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"a":1}` {
		t.Fatalf("unexpected value: %s", raw)
	}
}

func TestSQLiteOverwrite(t *testing.T) {
	store := setupSQLite(t)

	if err := store.Set("k", []byte("1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set("k", []byte("2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	raw, _, err := store.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(raw) != "2" {
		t.Fatalf("expected overwrite, got %s", raw)
	}
}

func TestSQLiteRemove(t *testing.T) {
	store := setupSQLite(t)

	if err := store.Set("k", []byte("1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Remove("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Fatal("expected key gone after remove")
	}

	// Removing an absent key is not an error.
	if err := store.Remove("never-set"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitflow-test.sqlite")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Set("k", []byte("persisted")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	store, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	raw, ok, err := store.Get("k")
	if err != nil || !ok || string(raw) != "persisted" {
		t.Fatalf("data lost across reopen: ok=%v err=%v raw=%s", ok, err, raw)
	}
}

func TestJSONHelpers(t *testing.T) {
	store := NewMemory()

	if err := SetJSON(store, "n", 42); err != nil {
		t.Fatalf("set json: %v", err)
	}
	if got := GetInt(store, "n", 0); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	// Absent and corrupt values coerce to the default.
	if got := GetInt(store, "absent", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
	if err := store.Set("junk", []byte("not-json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := GetInt(store, "junk", 0); got != 0 {
		t.Fatalf("expected 0 for junk, got %d", got)
	}

	if err := SetJSON(store, "s", "hello"); err != nil {
		t.Fatalf("set json: %v", err)
	}
	if got := GetString(store, "s", "def"); got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}
	if got := GetString(store, "absent", "def"); got != "def" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestGetJSONCorruptLeavesDefault(t *testing.T) {
	store := NewMemory()
	if err := store.Set("m", []byte("{{{")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var out map[string]bool
	if err := GetJSON(store, "m", &out); err != nil {
		t.Fatalf("get json: %v", err)
	}
	if out != nil {
		t.Fatalf("expected untouched default, got: %#v", out)
	}
}
