package repository

import (
	"errors"
	"testing"

	"commitflow/internal/storage"
)

func TestSettingsDefaults(t *testing.T) {
	repo := NewSettingsRepo(storage.NewMemory())

	if got := repo.Username(); got != DefaultUsername {
		t.Fatalf("expected default username, got %q", got)
	}
	if got := repo.Theme(); got != ThemeLight {
		t.Fatalf("expected light theme default, got %q", got)
	}
}

func TestSettingsUsername(t *testing.T) {
	repo := NewSettingsRepo(storage.NewMemory())

	var vErr *ValidationError
	if err := repo.SetUsername("  "); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got: %v", err)
	}

	if err := repo.SetUsername("Ada"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := repo.Username(); got != "Ada" {
		t.Fatalf("expected Ada, got %q", got)
	}
}

func TestSettingsThemeToggle(t *testing.T) {
	repo := NewSettingsRepo(storage.NewMemory())

	theme, err := repo.ToggleTheme()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if theme != ThemeDark || repo.Theme() != ThemeDark {
		t.Fatalf("expected dark after first toggle, got %q", theme)
	}

	theme, err = repo.ToggleTheme()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if theme != ThemeLight {
		t.Fatalf("expected light after second toggle, got %q", theme)
	}
}

func TestSettingsJunkThemeCoercesToLight(t *testing.T) {
	store := storage.NewMemory()
	if err := store.Set(storage.KeyTheme, []byte(`"neon"`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSettingsRepo(store)
	if got := repo.Theme(); got != ThemeLight {
		t.Fatalf("expected light for unknown theme, got %q", got)
	}
}

func TestPlaylists(t *testing.T) {
	repo := NewPlaylistRepo(storage.NewMemory())

	var vErr *ValidationError
	if err := repo.Add("not a url"); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got: %v", err)
	}

	if err := repo.Add("https://example.com/playlist/1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add("https://example.com/playlist/2"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.Delete(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	playlists, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(playlists) != 1 || playlists[0] != "https://example.com/playlist/2" {
		t.Fatalf("unexpected playlists: %#v", playlists)
	}
}
