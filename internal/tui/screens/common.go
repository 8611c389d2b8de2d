package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"commitflow/internal/repository"
)

// NavigateMsg is sent when navigation to another screen is requested
type NavigateMsg struct {
	Screen string
}

func Navigate(screen string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen}
	}
}

// RefreshMsg is sent when data should be refreshed
type RefreshMsg struct{}

func Refresh() tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg{}
	}
}

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	DoneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("241"))

	ActiveCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	InactiveCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// ApplyTheme retunes the palette for the persisted theme preference.
func ApplyTheme(theme string) {
	if theme == repository.ThemeLight {
		NormalStyle = NormalStyle.Foreground(lipgloss.Color("235"))
		InactiveCellStyle = InactiveCellStyle.Foreground(lipgloss.Color("252"))
		return
	}
	NormalStyle = NormalStyle.Foreground(lipgloss.Color("252"))
	InactiveCellStyle = InactiveCellStyle.Foreground(lipgloss.Color("238"))
}

// GlamourStyle maps the app theme to a glamour standard style.
func GlamourStyle(theme string) string {
	if theme == repository.ThemeLight {
		return "light"
	}
	return "dark"
}
