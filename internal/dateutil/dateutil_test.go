package dateutil

import (
	"testing"
	"time"
)

func TestDayDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2025-01-01", "2025-01-01", 0},
		{"next day", "2025-01-01", "2025-01-02", 1},
		{"gap", "2025-01-01", "2025-01-03", 2},
		{"backwards", "2025-01-03", "2025-01-01", -2},
		{"month boundary", "2025-01-31", "2025-02-01", 1},
		{"year boundary", "2024-12-31", "2025-01-01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayDiff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("DayDiff(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDayDiffMalformed(t *testing.T) {
	if _, err := DayDiff("garbage", "2025-01-01"); err == nil {
		t.Fatal("expected error for malformed first date")
	}
	if _, err := DayDiff("2025-01-01", "01/02/2025"); err == nil {
		t.Fatal("expected error for malformed second date")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-01-01", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-12-31" {
		t.Fatalf("expected 2024-12-31, got %s", got)
	}

	if _, err := AddDays("bad", 1); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestTodayAndYesterday(t *testing.T) {
	today := Today()
	if _, err := Parse(today); err != nil {
		t.Fatalf("Today produced unparseable date %q: %v", today, err)
	}

	diff, err := DayDiff(Yesterday(), today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != 1 {
		t.Fatalf("expected yesterday-to-today diff 1, got %d", diff)
	}
}

func TestDaysAgo(t *testing.T) {
	want := Day(time.Now().AddDate(0, 0, -7))
	if got := DaysAgo(7); got != want {
		t.Fatalf("DaysAgo(7) = %s, want %s", got, want)
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatShort("2025-01-25"); got != "Jan 25, 2025" {
		t.Fatalf("FormatShort = %q", got)
	}
	if got := Format("2025-01-06"); got != "Monday, January 6, 2025" {
		t.Fatalf("Format = %q", got)
	}
	// Malformed input passes through rather than panicking.
	if got := FormatShort("garbage"); got != "garbage" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestRelative(t *testing.T) {
	if got := Relative(Today()); got != "Today" {
		t.Fatalf("expected Today, got %q", got)
	}
	if got := Relative(Yesterday()); got != "Yesterday" {
		t.Fatalf("expected Yesterday, got %q", got)
	}
	if got := Relative("2020-05-01"); got != "May 1, 2020" {
		t.Fatalf("expected short form, got %q", got)
	}
}
