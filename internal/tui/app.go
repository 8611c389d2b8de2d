package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"commitflow/internal/backup"
	"commitflow/internal/config"
	"commitflow/internal/tracker"
	"commitflow/internal/tui/screens"
)

type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenCommits
	ScreenTasks
	ScreenHeatmap
	ScreenSettings
)

type App struct {
	tracker       *tracker.Tracker
	backup        *backup.Manager
	cfg           *config.Config
	currentScreen Screen
	width         int
	height        int

	// Screen models
	dashboard *screens.Dashboard
	commits   *screens.Commits
	tasks     *screens.Tasks
	heatmap   *screens.Heatmap
	settings  *screens.Settings
}

func NewApp(t *tracker.Tracker, b *backup.Manager, cfg *config.Config) *App {
	return &App{
		tracker:       t,
		backup:        b,
		cfg:           cfg,
		currentScreen: ScreenDashboard,
	}
}

func (a *App) Init() tea.Cmd {
	theme := a.tracker.Settings.Theme()
	screens.ApplyTheme(theme)

	a.dashboard = screens.NewDashboard(a.tracker, a.cfg.HeatmapDays)
	a.commits = screens.NewCommits(a.tracker, theme)
	a.tasks = screens.NewTasks(a.tracker)
	a.heatmap = screens.NewHeatmap(a.tracker, a.cfg.HeatmapDays)
	a.settings = screens.NewSettings(a.tracker, a.backup)

	return a.dashboard.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.currentScreen == ScreenDashboard {
				return a, tea.Quit
			}
			// Let individual screens handle 'q' for going back
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.commits.SetSize(msg.Width, msg.Height)
		a.tasks.SetSize(msg.Width, msg.Height)
		a.heatmap.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)

	case screens.NavigateMsg:
		return a.handleNavigation(msg)
	}

	// Update current screen
	var cmd tea.Cmd
	switch a.currentScreen {
	case ScreenDashboard:
		cmd = a.dashboard.Update(msg)
	case ScreenCommits:
		cmd = a.commits.Update(msg)
	case ScreenTasks:
		cmd = a.tasks.Update(msg)
	case ScreenHeatmap:
		cmd = a.heatmap.Update(msg)
	case ScreenSettings:
		cmd = a.settings.Update(msg)
	}

	return a, cmd
}

func (a *App) handleNavigation(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.Screen {
	case "dashboard":
		a.currentScreen = ScreenDashboard
		return a, a.dashboard.Init()
	case "commits":
		a.currentScreen = ScreenCommits
		return a, a.commits.Init()
	case "tasks":
		a.currentScreen = ScreenTasks
		return a, a.tasks.Init()
	case "heatmap":
		a.currentScreen = ScreenHeatmap
		return a, a.heatmap.Init()
	case "settings":
		a.currentScreen = ScreenSettings
		return a, a.settings.Init()
	}
	return a, nil
}

func (a *App) View() string {
	var content string

	switch a.currentScreen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenCommits:
		content = a.commits.View()
	case ScreenTasks:
		content = a.tasks.View()
	case ScreenHeatmap:
		content = a.heatmap.View()
	case ScreenSettings:
		content = a.settings.View()
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height).
		Render(content)
}

// Run starts the TUI and forwards tracker recompute events into the
// program so the visible screen reloads after any mutation.
func Run(t *tracker.Tracker, b *backup.Manager, cfg *config.Config) error {
	app := NewApp(t, b, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	t.Subscribe(func(tracker.Event) {
		p.Send(screens.RefreshMsg{})
	})

	_, err := p.Run()
	return err
}
