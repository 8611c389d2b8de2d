package activity

import (
	"sort"

	"commitflow/internal/dateutil"
	"commitflow/internal/models"
)

// maxWalk bounds the backward scan so corrupted data can never make
// recalculation loop forever.
const maxWalk = 1000

// Recalculate computes the current streak from scratch: consecutive
// active days ending at or adjacent to today. An inactive today is
// skipped rather than breaking the chain, so a streak isn't shown as
// broken before the user has had a chance to act; any earlier inactive
// day terminates the count. Calling it twice with unchanged input
// yields the same count.
func Recalculate(active Map, today string) int {
	ref, err := dateutil.Parse(today)
	if err != nil {
		return 0
	}

	streak := 0
	cur := ref
	for i := 0; i < maxWalk; i++ {
		date := dateutil.Day(cur)
		if active[date] {
			streak++
		} else if date != today {
			break
		}
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}

// Update applies the incremental day-rollover rule to a persisted
// streak when activity for today is (re)checked. Same-day removal of
// activity is deliberately a no-op: the stale count stands until the
// next calendar day's recompute, so editing today's data never
// punishes the user mid-day. A negative day difference (old data being
// edited) is likewise left alone.
func Update(state models.StreakState, activeToday bool, today string) models.StreakState {
	if state.LastCountedDate == "" {
		if activeToday {
			return models.StreakState{Count: 1, LastCountedDate: today}
		}
		return state
	}

	diff, err := dateutil.DayDiff(state.LastCountedDate, today)
	if err != nil {
		// Corrupt last-date, start over from today's evidence.
		if activeToday {
			return models.StreakState{Count: 1, LastCountedDate: today}
		}
		return models.StreakState{}
	}

	switch {
	case diff == 1 && activeToday:
		return models.StreakState{Count: state.Count + 1, LastCountedDate: today}
	case diff > 1 && activeToday:
		return models.StreakState{Count: 1, LastCountedDate: today}
	default:
		return state
	}
}

// Longest returns the longest run of consecutive active dates anywhere
// in history, 0 for an empty map. Unparseable dates are skipped as if
// they held no activity.
func Longest(active Map) int {
	dates := make([]string, 0, len(active))
	for d := range active {
		if _, err := dateutil.Parse(d); err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Strings(dates)

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		diff, err := dateutil.DayDiff(dates[i-1], dates[i])
		if err == nil && diff == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
