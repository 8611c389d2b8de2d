package dateutil

import "time"

// Layout is the calendar-date format used as a storage key everywhere.
const Layout = "2006-01-02"

// Day truncates a time to its local calendar date string.
func Day(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the current local calendar date.
func Today() string {
	return Day(time.Now())
}

// Yesterday returns yesterday's local calendar date.
func Yesterday() string {
	return DaysAgo(1)
}

// DaysAgo returns the local calendar date n days before today.
func DaysAgo(n int) string {
	return Day(time.Now().AddDate(0, 0, -n))
}

// Parse parses a YYYY-MM-DD date string.
func Parse(date string) (time.Time, error) {
	return time.Parse(Layout, date)
}

// AddDays shifts a date string by n calendar days. Returns an error for
// malformed input rather than guessing.
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Day(t.AddDate(0, 0, n)), nil
}

// DayDiff returns the whole-day difference b - a. Malformed dates
// report an error so callers can treat the entry as no activity.
func DayDiff(a, b string) (int, error) {
	ta, err := Parse(a)
	if err != nil {
		return 0, err
	}
	tb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// Format renders a date for display, e.g. "Monday, January 6, 2025".
func Format(date string) string {
	t, err := Parse(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatShort renders a date like "Jan 6, 2025".
func FormatShort(date string) string {
	t, err := Parse(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// Relative renders "Today", "Yesterday", or the short date form.
func Relative(date string) string {
	switch date {
	case Today():
		return "Today"
	case Yesterday():
		return "Yesterday"
	default:
		return FormatShort(date)
	}
}
