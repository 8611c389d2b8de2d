// Package backup implements the JSON export/import bundle and the
// data reset. A bundle carries every logical key; importing assigns
// only the fields present in the document, leaving the rest of the
// store untouched.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"commitflow/internal/models"
	"commitflow/internal/storage"
	"commitflow/internal/tracker"
)

// Bundle is the export document. Nil fields are absent on import.
type Bundle struct {
	Commits   map[string]models.CommitEntry `json:"commits,omitempty"`
	Tasks     []models.TaskEntry            `json:"tasks,omitempty"`
	Streak    *int                          `json:"streak,omitempty"`
	LastDate  *string                       `json:"lastDate,omitempty"`
	Activity  map[string]bool               `json:"activity,omitempty"`
	Playlists []string                      `json:"playlists,omitempty"`
	Username  *string                       `json:"username,omitempty"`
	Theme     *string                       `json:"theme,omitempty"`
	ExportAt  string                        `json:"exportDate"`
}

type Manager struct {
	store   storage.Store
	tracker *tracker.Tracker
}

func NewManager(store storage.Store, t *tracker.Tracker) *Manager {
	return &Manager{store: store, tracker: t}
}

// Export bundles all logical keys plus an export timestamp.
func (m *Manager) Export() ([]byte, error) {
	commits, err := m.tracker.Commits.All()
	if err != nil {
		return nil, err
	}
	tasks, err := m.tracker.Tasks.List()
	if err != nil {
		return nil, err
	}
	playlists, err := m.tracker.Playlists.List()
	if err != nil {
		return nil, err
	}
	active, err := m.tracker.Activity()
	if err != nil {
		return nil, err
	}

	state := m.tracker.Streak()
	username := m.tracker.Settings.Username()
	theme := m.tracker.Settings.Theme()

	bundle := Bundle{
		Commits:   commits,
		Tasks:     tasks,
		Streak:    &state.Count,
		Activity:  active,
		Playlists: playlists,
		Username:  &username,
		Theme:     &theme,
		ExportAt:  time.Now().Format(time.RFC3339),
	}
	if state.LastCountedDate != "" {
		bundle.LastDate = &state.LastCountedDate
	}

	return json.MarshalIndent(bundle, "", "  ")
}

// Import assigns each field present in the document back to its
// logical key, then rebuilds the derived state. Absent fields leave
// existing data alone.
func (m *Manager) Import(data []byte) error {
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("backup: invalid bundle: %w", err)
	}

	if bundle.Commits != nil {
		if err := storage.SetJSON(m.store, storage.KeyCommits, bundle.Commits); err != nil {
			return err
		}
	}
	if bundle.Tasks != nil {
		if err := storage.SetJSON(m.store, storage.KeyTasks, bundle.Tasks); err != nil {
			return err
		}
	}
	if bundle.Streak != nil {
		if err := storage.SetJSON(m.store, storage.KeyStreak, *bundle.Streak); err != nil {
			return err
		}
	}
	if bundle.LastDate != nil {
		if err := storage.SetJSON(m.store, storage.KeyLastDate, *bundle.LastDate); err != nil {
			return err
		}
	}
	if bundle.Activity != nil {
		if err := storage.SetJSON(m.store, storage.KeyActivity, bundle.Activity); err != nil {
			return err
		}
	}
	if bundle.Playlists != nil {
		if err := storage.SetJSON(m.store, storage.KeyPlaylists, bundle.Playlists); err != nil {
			return err
		}
	}
	if bundle.Username != nil {
		if err := storage.SetJSON(m.store, storage.KeyUsername, *bundle.Username); err != nil {
			return err
		}
	}
	if bundle.Theme != nil {
		if err := storage.SetJSON(m.store, storage.KeyTheme, *bundle.Theme); err != nil {
			return err
		}
	}

	return m.tracker.Rebuild(tracker.DataImported)
}

// Reset clears commits, tasks, streak state, the activity cache, and
// playlists. Username and theme are deliberately preserved.
func (m *Manager) Reset() error {
	keys := []string{
		storage.KeyCommits,
		storage.KeyTasks,
		storage.KeyStreak,
		storage.KeyLastDate,
		storage.KeyActivity,
		storage.KeyPlaylists,
	}
	for _, key := range keys {
		if err := m.store.Remove(key); err != nil {
			return err
		}
	}
	return m.tracker.Rebuild(tracker.DataReset)
}
