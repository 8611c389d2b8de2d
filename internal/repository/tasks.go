package repository

import (
	"sort"
	"strings"
	"time"

	"commitflow/internal/dateutil"
	"commitflow/internal/models"
	"commitflow/internal/storage"
)

// TaskRepo reads and writes the ordered task list. Tasks are addressed
// by position in the list, matching their display order.
type TaskRepo struct {
	store storage.Store
	now   func() time.Time
}

func NewTaskRepo(store storage.Store) *TaskRepo {
	return &TaskRepo{store: store, now: time.Now}
}

// Add appends a task dated today. Text is required.
func (r *TaskRepo) Add(text string) (models.TaskEntry, error) {
	return r.AddForDate(text, dateutil.Day(r.now()))
}

// AddForDate appends a task for an explicit date.
func (r *TaskRepo) AddForDate(text, date string) (models.TaskEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.TaskEntry{}, &ValidationError{Field: "text"}
	}

	tasks, err := r.load()
	if err != nil {
		return models.TaskEntry{}, err
	}

	entry := models.TaskEntry{Text: text, Date: date}
	tasks = append(tasks, entry)
	if err := storage.SetJSON(r.store, storage.KeyTasks, tasks); err != nil {
		return models.TaskEntry{}, err
	}
	return entry, nil
}

// Toggle flips the completion state of the task at position and
// returns the new state.
func (r *TaskRepo) Toggle(position int) (bool, error) {
	tasks, err := r.load()
	if err != nil {
		return false, err
	}
	if position < 0 || position >= len(tasks) {
		return false, ErrNotFound
	}

	tasks[position].Completed = !tasks[position].Completed
	if err := storage.SetJSON(r.store, storage.KeyTasks, tasks); err != nil {
		return false, err
	}
	return tasks[position].Completed, nil
}

// Delete removes the task at position.
func (r *TaskRepo) Delete(position int) error {
	tasks, err := r.load()
	if err != nil {
		return err
	}
	if position < 0 || position >= len(tasks) {
		return ErrNotFound
	}

	tasks = append(tasks[:position], tasks[position+1:]...)
	return storage.SetJSON(r.store, storage.KeyTasks, tasks)
}

// List returns every task in insertion order.
func (r *TaskRepo) List() ([]models.TaskEntry, error) {
	return r.load()
}

// ListForDate returns the tasks created on date, preserving insertion
// order.
func (r *TaskRepo) ListForDate(date string) ([]models.TaskEntry, error) {
	tasks, err := r.load()
	if err != nil {
		return nil, err
	}
	var out []models.TaskEntry
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out, nil
}

// DateGroup is one history bucket: a date and its tasks in insertion
// order.
type DateGroup struct {
	Date  string
	Tasks []models.TaskEntry
}

// GroupedByDate buckets tasks by date, newest date first, excluding
// the given date (normally today, which history views show
// separately).
func (r *TaskRepo) GroupedByDate(excluding string) ([]DateGroup, error) {
	tasks, err := r.load()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.TaskEntry)
	for _, t := range tasks {
		if t.Date == excluding {
			continue
		}
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	groups := make([]DateGroup, 0, len(byDate))
	for date, group := range byDate {
		groups = append(groups, DateGroup{Date: date, Tasks: group})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups, nil
}

func (r *TaskRepo) load() ([]models.TaskEntry, error) {
	var tasks []models.TaskEntry
	if err := storage.GetJSON(r.store, storage.KeyTasks, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.TaskEntry{}
	}
	return tasks, nil
}
