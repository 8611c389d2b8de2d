package screens

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"commitflow/internal/backup"
	"commitflow/internal/config"
	"commitflow/internal/dateutil"
	"commitflow/internal/repository"
	"commitflow/internal/tracker"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeName
	settingsModeReset
)

type Settings struct {
	tracker *tracker.Tracker
	backup  *backup.Manager
	width   int
	height  int

	summary *tracker.Summary
	theme   string
	mode    settingsMode
	input   textinput.Model
	loading bool
	err     error
	message string
}

func NewSettings(t *tracker.Tracker, b *backup.Manager) *Settings {
	ti := textinput.New()
	ti.Placeholder = "Display name"
	ti.CharLimit = 50
	ti.Width = 30

	return &Settings{
		tracker: t,
		backup:  b,
		input:   ti,
	}
}

func (s *Settings) SetSize(width, height int) {
	s.width = width
	s.height = height
}

type settingsDataMsg struct {
	summary *tracker.Summary
	theme   string
	err     error
}

func (s *Settings) Init() tea.Cmd {
	s.loading = true
	s.mode = settingsModeView
	return s.loadData
}

func (s *Settings) loadData() tea.Msg {
	summary, err := s.tracker.Summarize()
	return settingsDataMsg{summary: summary, theme: s.tracker.Settings.Theme(), err: err}
}

func (s *Settings) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case settingsDataMsg:
		s.loading = false
		s.err = msg.err
		s.summary = msg.summary
		s.theme = msg.theme
		return nil

	case RefreshMsg:
		return s.Init()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == settingsModeName {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	return nil
}

func (s *Settings) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch s.mode {
	case settingsModeName:
		switch msg.String() {
		case "enter":
			err := s.tracker.Settings.SetUsername(s.input.Value())
			var vErr *repository.ValidationError
			if errors.As(err, &vErr) {
				s.message = vErr.Error()
				return nil
			}
			if err != nil {
				s.err = err
				return nil
			}
			s.message = "Name saved."
			s.mode = settingsModeView
			return s.Init()
		case "esc":
			s.mode = settingsModeView
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd

	case settingsModeReset:
		switch msg.String() {
		case "y":
			if err := s.backup.Reset(); err != nil {
				s.err = err
			} else {
				s.message = "All data has been reset."
			}
			s.mode = settingsModeView
			return s.Init()
		case "n", "esc":
			s.mode = settingsModeView
		}
		return nil
	}

	switch msg.String() {
	case "n":
		s.mode = settingsModeName
		s.message = ""
		s.input.SetValue(s.tracker.Settings.Username())
		s.input.Focus()
	case "t":
		theme, err := s.tracker.Settings.ToggleTheme()
		if err != nil {
			s.err = err
			return nil
		}
		ApplyTheme(theme)
		return s.Init()
	case "x":
		return s.export()
	case "r":
		s.mode = settingsModeReset
		s.message = ""
	case "q", "esc":
		return Navigate("dashboard")
	}
	return nil
}

func (s *Settings) export() tea.Cmd {
	data, err := s.backup.Export()
	if err != nil {
		s.err = err
		return nil
	}

	dir, err := config.CommitflowDir()
	if err != nil {
		s.err = err
		return nil
	}
	path := filepath.Join(dir, fmt.Sprintf("commitflow-backup-%s.json", dateutil.Today()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.err = err
		return nil
	}

	s.message = "Exported to " + path
	return nil
}

func (s *Settings) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("SETTINGS"))
	b.WriteString("\n")

	if s.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if s.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", s.err)))
		b.WriteString("\n")
		return b.String()
	}

	sum := s.summary
	stats := fmt.Sprintf(
		"Commits: %d\nTasks: %d (%d completed)\nStreak: %d\nActive days: %d\nLongest streak: %d",
		sum.TotalCommits, sum.TotalTasks, sum.CompletedTasks,
		sum.Streak, sum.ActiveDays, sum.LongestStreak,
	)
	b.WriteString(BoxStyle.Render(stats))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Name: %s\n", NormalStyle.Render(sum.Username)))
	b.WriteString(fmt.Sprintf("Theme: %s\n", NormalStyle.Render(s.theme)))

	if s.mode == settingsModeName {
		b.WriteString("\n")
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}

	if s.mode == settingsModeReset {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(
			"Reset ALL data? Commits, tasks, streak, activity and playlists will be deleted. [y/n]"))
		b.WriteString("\n")
	}

	if s.message != "" {
		b.WriteString("\n")
		b.WriteString(SuccessStyle.Render(s.message))
		b.WriteString("\n")
	}

	help := "[n] Name  [t] Theme  [x] Export  [r] Reset  [esc] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
