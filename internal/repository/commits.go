package repository

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"commitflow/internal/dateutil"
	"commitflow/internal/models"
	"commitflow/internal/storage"
)

// CommitRepo reads and writes the date-keyed commit map. It holds no
// state of its own: every operation reads a fresh snapshot from the
// store and writes the whole map back.
type CommitRepo struct {
	store storage.Store
	now   func() time.Time
}

func NewCommitRepo(store storage.Store) *CommitRepo {
	return &CommitRepo{store: store, now: time.Now}
}

// SaveResult reports whether Save created a new entry or overwrote an
// existing one.
type SaveResult int

const (
	SaveCreated SaveResult = iota
	SaveUpdated
)

// Save writes the entry for date, overwriting any existing entry in
// place (update semantics, including the timestamp). Title and
// description are required.
func (r *CommitRepo) Save(date, title, description, notes string) (SaveResult, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return 0, &ValidationError{Field: "title"}
	}
	if description == "" {
		return 0, &ValidationError{Field: "description"}
	}

	commits, err := r.load()
	if err != nil {
		return 0, err
	}

	result := SaveCreated
	if _, exists := commits[date]; exists {
		result = SaveUpdated
	}

	commits[date] = models.CommitEntry{
		Title:       title,
		Description: description,
		Notes:       strings.TrimSpace(notes),
		Timestamp:   r.now(),
	}

	if err := storage.SetJSON(r.store, storage.KeyCommits, commits); err != nil {
		return 0, err
	}
	return result, nil
}

// Delete removes the entry for date. ErrNotFound when there is none.
func (r *CommitRepo) Delete(date string) error {
	commits, err := r.load()
	if err != nil {
		return err
	}
	if _, exists := commits[date]; !exists {
		return ErrNotFound
	}
	delete(commits, date)
	return storage.SetJSON(r.store, storage.KeyCommits, commits)
}

// Get returns the entry for date, or ErrNotFound.
func (r *CommitRepo) Get(date string) (models.CommitEntry, error) {
	commits, err := r.load()
	if err != nil {
		return models.CommitEntry{}, err
	}
	entry, ok := commits[date]
	if !ok {
		return models.CommitEntry{}, ErrNotFound
	}
	return entry, nil
}

// List returns all entries sorted by calendar date descending. The
// sort key is the date, not the timestamp.
func (r *CommitRepo) List() ([]models.Commit, error) {
	commits, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]models.Commit, 0, len(commits))
	for date, entry := range commits {
		out = append(out, models.Commit{Date: date, CommitEntry: entry})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

// All returns the raw date-keyed map, the shape the activity deriver
// consumes.
func (r *CommitRepo) All() (map[string]models.CommitEntry, error) {
	return r.load()
}

// load reads the commit map, migrating the legacy array shape on first
// contact. Corrupt payloads coerce to an empty map.
func (r *CommitRepo) load() (map[string]models.CommitEntry, error) {
	raw, ok, err := r.store.Get(storage.KeyCommits)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]models.CommitEntry{}, nil
	}

	var commits map[string]models.CommitEntry
	if err := json.Unmarshal(raw, &commits); err == nil {
		if commits == nil {
			commits = map[string]models.CommitEntry{}
		}
		return commits, nil
	}

	var legacy []models.LegacyCommit
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return r.migrateLegacy(legacy)
	}

	return map[string]models.CommitEntry{}, nil
}

// migrateLegacy converts the old ordered array of anonymous entries to
// the date-keyed map, assigning consecutive synthetic dates ending at
// today with the oldest entry furthest back, and persists the result
// exactly once.
func (r *CommitRepo) migrateLegacy(legacy []models.LegacyCommit) (map[string]models.CommitEntry, error) {
	commits := make(map[string]models.CommitEntry, len(legacy))
	today := dateutil.Day(r.now())

	n := len(legacy)
	for i, old := range legacy {
		date, err := dateutil.AddDays(today, -(n - 1 - i))
		if err != nil {
			continue
		}
		commits[date] = models.CommitEntry{
			Title:       old.Title,
			Description: old.Description,
			Timestamp:   r.now(),
		}
	}

	if err := storage.SetJSON(r.store, storage.KeyCommits, commits); err != nil {
		return nil, err
	}
	return commits, nil
}
