package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"commitflow/internal/activity"
	"commitflow/internal/tracker"
)

const fullYearDays = 365

type Heatmap struct {
	tracker    *tracker.Tracker
	windowDays int
	fullYear   bool
	width      int
	height     int

	cells   []activity.Cell
	streak  int
	longest int
	active  int
	loading bool
	err     error
}

func NewHeatmap(t *tracker.Tracker, windowDays int) *Heatmap {
	return &Heatmap{
		tracker:    t,
		windowDays: windowDays,
		loading:    true,
	}
}

func (h *Heatmap) SetSize(width, height int) {
	h.width = width
	h.height = height
}

type heatmapDataMsg struct {
	cells   []activity.Cell
	streak  int
	longest int
	active  int
	err     error
}

func (h *Heatmap) Init() tea.Cmd {
	h.loading = true
	return h.loadData
}

func (h *Heatmap) days() int {
	if h.fullYear {
		return fullYearDays
	}
	return h.windowDays
}

func (h *Heatmap) loadData() tea.Msg {
	cells, err := h.tracker.Heatmap(h.days())
	if err != nil {
		return heatmapDataMsg{err: err}
	}

	active := make(activity.Map)
	for _, cell := range cells {
		if cell.Active {
			active[cell.Date] = true
		}
	}

	return heatmapDataMsg{
		cells:   cells,
		streak:  h.tracker.Streak().Count,
		longest: activity.Longest(active),
		active:  activity.ActiveDays(active),
	}
}

func (h *Heatmap) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case heatmapDataMsg:
		h.loading = false
		h.err = msg.err
		h.cells = msg.cells
		h.streak = msg.streak
		h.longest = msg.longest
		h.active = msg.active
		return nil

	case RefreshMsg:
		return h.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			h.fullYear = !h.fullYear
			return h.Init()
		case "q", "esc":
			return Navigate("dashboard")
		}
	}

	return nil
}

func (h *Heatmap) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("ACTIVITY"))
	b.WriteString("\n")

	if h.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if h.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", h.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Last %d days", len(h.cells))))
	b.WriteString("\n")
	b.WriteString(RenderCells(h.cells))
	b.WriteString("\n\n")

	stats := fmt.Sprintf(
		"Current streak: %d\nLongest in window: %d\nActive days: %d",
		h.streak, h.longest, h.active,
	)
	b.WriteString(BoxStyle.Render(stats))
	b.WriteString("\n")

	label := "full year"
	if h.fullYear {
		label = fmt.Sprintf("%d days", h.windowDays)
	}
	b.WriteString(HelpStyle.Render(fmt.Sprintf("[f] Show %s  [esc] Back", label)))

	return b.String()
}
