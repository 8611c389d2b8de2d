package models

import "time"

// CommitEntry is one daily log entry. Entries are keyed by their
// calendar date (YYYY-MM-DD) in storage, one entry per date.
type CommitEntry struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Commit pairs an entry with its date key for display purposes.
type Commit struct {
	Date string
	CommitEntry
}

// TaskEntry is a dated todo item. Insertion order is meaningful for
// display; duplicate text on the same date is legal.
type TaskEntry struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

// LegacyCommit is the pre-migration commit shape: an anonymous entry
// with no date, stored as an ordered array.
type LegacyCommit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StreakState is the persisted streak: Count consecutive active days
// ending at LastCountedDate. Empty LastCountedDate means no streak yet.
type StreakState struct {
	Count           int
	LastCountedDate string
}
