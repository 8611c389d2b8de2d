package repository

import (
	"strings"

	"commitflow/internal/storage"
)

const (
	DefaultUsername = "Coder"
	ThemeLight      = "light"
	ThemeDark       = "dark"
)

// SettingsRepo holds the user preferences that survive a data reset:
// display name and theme.
type SettingsRepo struct {
	store storage.Store
}

func NewSettingsRepo(store storage.Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

func (r *SettingsRepo) Username() string {
	return storage.GetString(r.store, storage.KeyUsername, DefaultUsername)
}

func (r *SettingsRepo) SetUsername(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "username"}
	}
	return storage.SetJSON(r.store, storage.KeyUsername, name)
}

func (r *SettingsRepo) Theme() string {
	theme := storage.GetString(r.store, storage.KeyTheme, ThemeLight)
	if theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

// ToggleTheme flips light/dark and returns the new theme.
func (r *SettingsRepo) ToggleTheme() (string, error) {
	next := ThemeDark
	if r.Theme() == ThemeDark {
		next = ThemeLight
	}
	if err := storage.SetJSON(r.store, storage.KeyTheme, next); err != nil {
		return "", err
	}
	return next, nil
}
