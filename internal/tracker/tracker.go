// Package tracker owns the recompute pipeline: every mutation of the
// commit or task stores flows through here so the activity map and
// streak are re-derived from fresh snapshots before any dependent
// read, and interested components are notified with a typed event
// instead of being probed for update hooks.
package tracker

import (
	"fmt"
	"time"

	"commitflow/internal/activity"
	"commitflow/internal/dateutil"
	"commitflow/internal/models"
	"commitflow/internal/repository"
	"commitflow/internal/storage"
)

// Event identifies what kind of mutation triggered a recompute.
type Event int

const (
	CommitsChanged Event = iota
	TasksChanged
	DataImported
	DataReset
)

// Subscriber receives an Event after the derived state has been
// recomputed and persisted.
type Subscriber func(Event)

type Tracker struct {
	store     storage.Store
	Commits   *repository.CommitRepo
	Tasks     *repository.TaskRepo
	Playlists *repository.PlaylistRepo
	Settings  *repository.SettingsRepo

	now         func() time.Time
	subscribers []Subscriber
}

func New(store storage.Store) *Tracker {
	return &Tracker{
		store:     store,
		Commits:   repository.NewCommitRepo(store),
		Tasks:     repository.NewTaskRepo(store),
		Playlists: repository.NewPlaylistRepo(store),
		Settings:  repository.NewSettingsRepo(store),
		now:       time.Now,
	}
}

// Subscribe registers a callback for recompute events. Not safe for
// concurrent use; call during setup.
func (t *Tracker) Subscribe(s Subscriber) {
	t.subscribers = append(t.subscribers, s)
}

func (t *Tracker) notify(ev Event) {
	for _, s := range t.subscribers {
		s(ev)
	}
}

func (t *Tracker) today() string {
	return dateutil.Day(t.now())
}

// Activity derives the active-date set from fresh commit and task
// snapshots and persists the cache copy the heatmap reads. The stores
// stay the source of truth; the cache is re-synced on every call.
func (t *Tracker) Activity() (activity.Map, error) {
	commits, err := t.Commits.All()
	if err != nil {
		return nil, err
	}
	tasks, err := t.Tasks.List()
	if err != nil {
		return nil, err
	}

	active := activity.Derive(commits, tasks)
	if err := storage.SetJSON(t.store, storage.KeyActivity, active); err != nil {
		return nil, err
	}
	return active, nil
}

// Streak loads the persisted streak state, coercing anything missing
// or malformed to zero values.
func (t *Tracker) Streak() models.StreakState {
	return models.StreakState{
		Count:           storage.GetInt(t.store, storage.KeyStreak, 0),
		LastCountedDate: storage.GetString(t.store, storage.KeyLastDate, ""),
	}
}

func (t *Tracker) saveStreak(state models.StreakState) error {
	if err := storage.SetJSON(t.store, storage.KeyStreak, state.Count); err != nil {
		return err
	}
	if state.LastCountedDate == "" {
		return t.store.Remove(storage.KeyLastDate)
	}
	return storage.SetJSON(t.store, storage.KeyLastDate, state.LastCountedDate)
}

// Recompute rebuilds everything from scratch: activity from the raw
// stores, then the streak by walking back from today. Runs once at
// startup and after bulk changes (import, reset). Idempotent.
func (t *Tracker) Recompute() (int, error) {
	active, err := t.Activity()
	if err != nil {
		return 0, err
	}

	today := t.today()
	count := activity.Recalculate(active, today)

	state := t.Streak()
	state.Count = count
	if count > 0 {
		state.LastCountedDate = today
	}
	if err := t.saveStreak(state); err != nil {
		return 0, err
	}
	return count, nil
}

// Rebuild runs the full recompute and announces a bulk change
// (import, reset).
func (t *Tracker) Rebuild(ev Event) error {
	if _, err := t.Recompute(); err != nil {
		return err
	}
	t.notify(ev)
	return nil
}

// afterMutation is the single pipeline stage run after every store
// mutation: re-derive activity, apply the incremental streak rule for
// today, persist, notify. The incremental rule (not a full recompute)
// is what keeps a same-day deletion from retroactively dropping
// today's streak before the next day's startup recompute.
func (t *Tracker) afterMutation(ev Event) error {
	active, err := t.Activity()
	if err != nil {
		return err
	}

	today := t.today()
	state := activity.Update(t.Streak(), active[today], today)
	if err := t.saveStreak(state); err != nil {
		return err
	}

	t.notify(ev)
	return nil
}

// SaveCommit writes the commit entry for date and runs the pipeline.
func (t *Tracker) SaveCommit(date, title, description, notes string) (repository.SaveResult, error) {
	result, err := t.Commits.Save(date, title, description, notes)
	if err != nil {
		return result, err
	}
	return result, t.afterMutation(CommitsChanged)
}

// DeleteCommit removes the entry for date and runs the pipeline.
func (t *Tracker) DeleteCommit(date string) error {
	if err := t.Commits.Delete(date); err != nil {
		return err
	}
	return t.afterMutation(CommitsChanged)
}

// AddTask appends a task for today and runs the pipeline.
func (t *Tracker) AddTask(text string) (models.TaskEntry, error) {
	entry, err := t.Tasks.Add(text)
	if err != nil {
		return entry, err
	}
	return entry, t.afterMutation(TasksChanged)
}

// ToggleTask flips completion at position and runs the pipeline.
func (t *Tracker) ToggleTask(position int) (bool, error) {
	completed, err := t.Tasks.Toggle(position)
	if err != nil {
		return completed, err
	}
	return completed, t.afterMutation(TasksChanged)
}

// DeleteTask removes the task at position and runs the pipeline.
func (t *Tracker) DeleteTask(position int) error {
	if err := t.Tasks.Delete(position); err != nil {
		return err
	}
	return t.afterMutation(TasksChanged)
}

// Heatmap derives fresh activity and renders the trailing window
// ending today.
func (t *Tracker) Heatmap(days int) ([]activity.Cell, error) {
	active, err := t.Activity()
	if err != nil {
		return nil, err
	}
	return activity.Window(active, days, t.today()), nil
}

// Summary is the read-only dashboard aggregate.
type Summary struct {
	Username       string
	Streak         int
	LongestStreak  int
	ActiveDays     int
	TodayTasks     []models.TaskEntry
	CompletedToday int
	TodayStatus    string
	RecentCommits  []models.Commit
	TotalCommits   int
	TotalTasks     int
	CompletedTasks int
	Playlists      []string
}

// Summarize recomputes derived state and collects everything the
// landing view needs in one read.
func (t *Tracker) Summarize() (*Summary, error) {
	active, err := t.Activity()
	if err != nil {
		return nil, err
	}

	today := t.today()
	commits, err := t.Commits.List()
	if err != nil {
		return nil, err
	}
	tasks, err := t.Tasks.List()
	if err != nil {
		return nil, err
	}
	todayTasks, err := t.Tasks.ListForDate(today)
	if err != nil {
		return nil, err
	}
	playlists, err := t.Playlists.List()
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Username:      t.Settings.Username(),
		Streak:        t.Streak().Count,
		LongestStreak: activity.Longest(active),
		ActiveDays:    activity.ActiveDays(active),
		TodayTasks:    todayTasks,
		TotalCommits:  len(commits),
		TotalTasks:    len(tasks),
		Playlists:     playlists,
	}

	for _, task := range tasks {
		if task.Completed {
			s.CompletedTasks++
		}
	}
	for _, task := range todayTasks {
		if task.Completed {
			s.CompletedToday++
		}
	}

	if len(commits) > 5 {
		commits = commits[:5]
	}
	s.RecentCommits = commits
	s.TodayStatus = todayStatus(s.CompletedToday, len(todayTasks))

	return s, nil
}

func todayStatus(completed, total int) string {
	switch {
	case total == 0:
		return "No tasks for today. Add some to get started!"
	case completed == total:
		return "All tasks completed! Great job!"
	case completed > 0:
		return fmt.Sprintf("%d/%d tasks completed today", completed, total)
	default:
		plural := "s"
		if total == 1 {
			plural = ""
		}
		return fmt.Sprintf("%d task%s pending", total, plural)
	}
}
