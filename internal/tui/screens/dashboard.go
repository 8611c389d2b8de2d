package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"commitflow/internal/activity"
	"commitflow/internal/dateutil"
	"commitflow/internal/tracker"
)

type Dashboard struct {
	tracker     *tracker.Tracker
	heatmapDays int
	width       int
	height      int

	summary *tracker.Summary
	window  []activity.Cell
	loading bool
	err     error
}

func NewDashboard(t *tracker.Tracker, heatmapDays int) *Dashboard {
	return &Dashboard{
		tracker:     t,
		heatmapDays: heatmapDays,
		loading:     true,
	}
}

func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

type dashboardDataMsg struct {
	summary *tracker.Summary
	window  []activity.Cell
	err     error
}

func (d *Dashboard) Init() tea.Cmd {
	d.loading = true
	return d.loadData
}

func (d *Dashboard) loadData() tea.Msg {
	summary, err := d.tracker.Summarize()
	if err != nil {
		return dashboardDataMsg{err: err}
	}

	window, err := d.tracker.Heatmap(d.heatmapDays)
	if err != nil {
		return dashboardDataMsg{err: err}
	}

	return dashboardDataMsg{summary: summary, window: window}
}

func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.loading = false
		d.err = msg.err
		d.summary = msg.summary
		d.window = msg.window
		return nil

	case RefreshMsg:
		return d.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return Navigate("commits")
		case "t":
			return Navigate("tasks")
		case "h":
			return Navigate("heatmap")
		case "s":
			return Navigate("settings")
		}
	}

	return nil
}

func (d *Dashboard) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("COMMITFLOW"))
	b.WriteString("\n")

	if d.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if d.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", d.err)))
		b.WriteString("\n")
		return b.String()
	}

	s := d.summary
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Welcome, %s", s.Username)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf(
		"Streak: %s\n%s",
		d.formatStreak(s.Streak),
		s.TodayStatus,
	)
	b.WriteString(BoxStyle.Render(stats))
	b.WriteString("\n\n")

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Last %d days", len(d.window))))
	b.WriteString("\n")
	b.WriteString(RenderCells(d.window))
	b.WriteString("\n\n")

	b.WriteString(SubtitleStyle.Render("Today's tasks"))
	b.WriteString("\n")
	if len(s.TodayTasks) == 0 {
		b.WriteString(DimStyle.Render("  No tasks added yet."))
		b.WriteString("\n")
	}
	shown := s.TodayTasks
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, task := range shown {
		line := "  " + task.Text
		if task.Completed {
			b.WriteString(DoneStyle.Render(line))
		} else {
			b.WriteString(NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if extra := len(s.TodayTasks) - len(shown); extra > 0 {
		b.WriteString(DimStyle.Render(fmt.Sprintf("  +%d more tasks...", extra)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(SubtitleStyle.Render("Recent commits"))
	b.WriteString("\n")
	if len(s.RecentCommits) == 0 {
		b.WriteString(DimStyle.Render("  No commits added yet."))
		b.WriteString("\n")
	}
	for _, c := range s.RecentCommits {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			NormalStyle.Render(c.Title),
			DimStyle.Render("("+dateutil.Relative(c.Date)+")"),
		))
	}
	b.WriteString("\n")

	if len(s.Playlists) > 0 {
		b.WriteString(SubtitleStyle.Render("Playlists"))
		b.WriteString("\n")
		for _, url := range s.Playlists {
			b.WriteString(DimStyle.Render("  " + url))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	help := "[c] Commits  [t] Tasks  [h] Heatmap  [s] Settings  [q] Quit"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func (d *Dashboard) formatStreak(streak int) string {
	plural := "s"
	if streak == 1 {
		plural = ""
	}
	text := fmt.Sprintf("%d day%s", streak, plural)
	if streak == 0 {
		return DimStyle.Render(text)
	}
	return SuccessStyle.Render(text)
}

// RenderCells draws a heatmap strip, one glyph per day, oldest first.
func RenderCells(cells []activity.Cell) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 && i%28 == 0 {
			b.WriteString("\n")
		}
		if cell.Active {
			b.WriteString(ActiveCellStyle.Render("■ "))
		} else {
			b.WriteString(InactiveCellStyle.Render("■ "))
		}
	}
	return b.String()
}
