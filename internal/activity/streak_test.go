package activity

import (
	"testing"

	"commitflow/internal/dateutil"
	"commitflow/internal/models"
)

func TestRecalculateSingleDay(t *testing.T) {
	active := Map{"2025-01-01": true}

	if got := Recalculate(active, "2025-01-01"); got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}
}

func TestRecalculateConsecutiveRun(t *testing.T) {
	active := Map{
		"2025-01-01": true,
		"2025-01-02": true,
		"2025-01-03": true,
	}

	if got := Recalculate(active, "2025-01-03"); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestRecalculateSkipsInactiveToday(t *testing.T) {
	// User hasn't acted yet today; the chain ending yesterday still
	// counts.
	active := Map{
		"2025-01-01": true,
		"2025-01-02": true,
	}

	if got := Recalculate(active, "2025-01-03"); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestRecalculateGapBreaksChain(t *testing.T) {
	active := Map{
		"2025-01-01": true,
		"2025-01-03": true,
	}

	if got := Recalculate(active, "2025-01-03"); got != 1 {
		t.Fatalf("gap at 01-02 should leave streak 1, got %d", got)
	}
}

func TestRecalculateAfterMiddleDeletion(t *testing.T) {
	active := Map{
		"2025-01-01": true,
		"2025-01-02": true,
		"2025-01-03": true,
	}
	if got := Recalculate(active, "2025-01-03"); got != 3 {
		t.Fatalf("expected 3 before deletion, got %d", got)
	}

	delete(active, "2025-01-02")
	if got := Recalculate(active, "2025-01-03"); got != 1 {
		t.Fatalf("expected 1 after chain broken, got %d", got)
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	active := Map{
		"2025-01-02": true,
		"2025-01-03": true,
	}

	first := Recalculate(active, "2025-01-03")
	second := Recalculate(active, "2025-01-03")
	if first != second {
		t.Fatalf("recalculate not idempotent: %d then %d", first, second)
	}
}

func TestRecalculateEmptyAndMalformed(t *testing.T) {
	if got := Recalculate(Map{}, "2025-01-03"); got != 0 {
		t.Fatalf("empty map should give 0, got %d", got)
	}
	if got := Recalculate(Map{"2025-01-03": true}, "not-a-date"); got != 0 {
		t.Fatalf("malformed reference should give 0, got %d", got)
	}
}

func TestRecalculateBounded(t *testing.T) {
	// A chain longer than the safety bound terminates at the bound.
	active := make(Map)
	date := "2021-01-01"
	cur := date
	for i := 0; i < 1500; i++ {
		active[cur] = true
		next, err := dateutil.AddDays(cur, 1)
		if err != nil {
			t.Fatal(err)
		}
		cur = next
	}

	last, err := dateutil.AddDays(date, 1499)
	if err != nil {
		t.Fatal(err)
	}
	if got := Recalculate(active, last); got != maxWalk {
		t.Fatalf("expected bound %d, got %d", maxWalk, got)
	}
}

func TestUpdateFirstActivity(t *testing.T) {
	state := Update(models.StreakState{}, true, "2025-01-01")
	if state.Count != 1 || state.LastCountedDate != "2025-01-01" {
		t.Fatalf("unexpected state: %#v", state)
	}
}

func TestUpdateNoActivityNoState(t *testing.T) {
	state := Update(models.StreakState{}, false, "2025-01-01")
	if state.Count != 0 || state.LastCountedDate != "" {
		t.Fatalf("unexpected state: %#v", state)
	}
}

func TestUpdateSameDayRemovalIsNoOp(t *testing.T) {
	// Deleting today's only activity leaves the already-counted streak
	// standing until the next day's recompute.
	prev := models.StreakState{Count: 5, LastCountedDate: "2025-01-05"}

	state := Update(prev, false, "2025-01-05")
	if state != prev {
		t.Fatalf("same-day removal must not change state, got: %#v", state)
	}
}

func TestUpdateNextDayIncrements(t *testing.T) {
	prev := models.StreakState{Count: 5, LastCountedDate: "2025-01-05"}

	state := Update(prev, true, "2025-01-06")
	if state.Count != 6 || state.LastCountedDate != "2025-01-06" {
		t.Fatalf("unexpected state: %#v", state)
	}
}

func TestUpdateNextDayInactiveKeepsState(t *testing.T) {
	prev := models.StreakState{Count: 5, LastCountedDate: "2025-01-05"}

	state := Update(prev, false, "2025-01-06")
	if state != prev {
		t.Fatalf("inactive rollover must wait, got: %#v", state)
	}
}

func TestUpdateAfterGapResetsToOne(t *testing.T) {
	prev := models.StreakState{Count: 5, LastCountedDate: "2025-01-05"}

	state := Update(prev, true, "2025-01-09")
	if state.Count != 1 || state.LastCountedDate != "2025-01-09" {
		t.Fatalf("unexpected state: %#v", state)
	}
}

func TestUpdateBackwardsDateIsNoOp(t *testing.T) {
	prev := models.StreakState{Count: 5, LastCountedDate: "2025-01-05"}

	state := Update(prev, true, "2025-01-03")
	if state != prev {
		t.Fatalf("editing old data must not change state, got: %#v", state)
	}
}

func TestUpdateCorruptLastDate(t *testing.T) {
	prev := models.StreakState{Count: 5, LastCountedDate: "garbage"}

	state := Update(prev, true, "2025-01-05")
	if state.Count != 1 || state.LastCountedDate != "2025-01-05" {
		t.Fatalf("unexpected state: %#v", state)
	}

	state = Update(prev, false, "2025-01-05")
	if state.Count != 0 {
		t.Fatalf("corrupt state without activity should zero out, got: %#v", state)
	}
}

func TestLongestEmpty(t *testing.T) {
	if got := Longest(Map{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestLongestGapOfTwoIsOne(t *testing.T) {
	active := Map{
		"2025-01-01": true,
		"2025-01-03": true,
	}
	if got := Longest(active); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestLongestFindsMiddleRun(t *testing.T) {
	active := Map{
		"2025-01-01": true,
		"2025-01-05": true,
		"2025-01-06": true,
		"2025-01-07": true,
		"2025-01-10": true,
	}
	if got := Longest(active); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestLongestSkipsCorruptDates(t *testing.T) {
	active := Map{
		"2025-01-01": true,
		"garbage":    true,
		"2025-01-02": true,
	}
	if got := Longest(active); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
