package activity

import "commitflow/internal/dateutil"

// Cell is one day of the heatmap window.
type Cell struct {
	Date   string
	Active bool
}

// Window renders the trailing activity window ending at reference:
// exactly days cells, oldest first, covering
// [reference-days+1, reference]. The window size is configuration, not
// a constant; 14 and 365 are the documented presets.
func Window(active Map, days int, reference string) []Cell {
	if days <= 0 {
		return nil
	}
	ref, err := dateutil.Parse(reference)
	if err != nil {
		return nil
	}

	cells := make([]Cell, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := dateutil.Day(ref.AddDate(0, 0, -i))
		cells = append(cells, Cell{Date: date, Active: active[date]})
	}
	return cells
}

// ActiveDays counts the distinct active dates in the map.
func ActiveDays(active Map) int {
	return len(active)
}
