// Package activity derives which calendar dates count as "active" from
// the raw commit and task records, and computes streaks and heatmap
// windows over that set. Everything here is a pure function of its
// inputs: derivation is a full recompute every time, which keeps the
// activity map consistent after any edit or delete.
package activity

import "commitflow/internal/models"

// Map marks active calendar dates. Inactive dates are absent, never
// stored as false.
type Map map[string]bool

// Derive computes the active-date set. A date is active iff it has a
// commit entry, or it has at least one task and every task on that
// date is completed. Commits win regardless of task state.
func Derive(commits map[string]models.CommitEntry, tasks []models.TaskEntry) Map {
	active := make(Map, len(commits))

	for date := range commits {
		active[date] = true
	}

	byDate := make(map[string][]models.TaskEntry)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	for date, group := range byDate {
		if len(group) == 0 {
			continue
		}
		done := true
		for _, t := range group {
			if !t.Completed {
				done = false
				break
			}
		}
		if done {
			active[date] = true
		}
	}

	return active
}
