package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"commitflow/internal/dateutil"
	"commitflow/internal/models"
	"commitflow/internal/repository"
	"commitflow/internal/tracker"
)

type commitsMode int

const (
	commitsModeList commitsMode = iota
	commitsModeEdit
	commitsModeDelete
	commitsModeDetail
)

const (
	fieldTitle = iota
	fieldDescription
	fieldNotes
	fieldCount
)

type Commits struct {
	tracker *tracker.Tracker
	theme   string
	width   int
	height  int

	commits  []models.Commit
	cursor   int
	mode     commitsMode
	editDate string
	inputs   [fieldCount]textinput.Model
	focused  int
	detail   string
	loading  bool
	err      error
	message  string
}

func NewCommits(t *tracker.Tracker, theme string) *Commits {
	c := &Commits{tracker: t, theme: theme}

	placeholders := [fieldCount]string{"Title", "What did you learn or build?", "Notes (markdown, optional)"}
	for i := range c.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = 60
		c.inputs[i] = ti
	}

	return c
}

func (c *Commits) SetSize(width, height int) {
	c.width = width
	c.height = height
}

type commitsDataMsg struct {
	commits []models.Commit
	err     error
}

func (c *Commits) Init() tea.Cmd {
	c.loading = true
	c.mode = commitsModeList
	c.message = ""
	return c.loadData
}

func (c *Commits) loadData() tea.Msg {
	commits, err := c.tracker.Commits.List()
	return commitsDataMsg{commits: commits, err: err}
}

func (c *Commits) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commitsDataMsg:
		c.loading = false
		c.err = msg.err
		c.commits = msg.commits
		if c.cursor >= len(c.commits) {
			c.cursor = max(0, len(c.commits)-1)
		}
		return nil

	case RefreshMsg:
		return c.Init()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.mode == commitsModeEdit {
		var cmd tea.Cmd
		c.inputs[c.focused], cmd = c.inputs[c.focused].Update(msg)
		return cmd
	}

	return nil
}

func (c *Commits) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch c.mode {
	case commitsModeList:
		return c.handleListKey(msg)
	case commitsModeEdit:
		return c.handleEditKey(msg)
	case commitsModeDelete:
		return c.handleDeleteKey(msg)
	case commitsModeDetail:
		switch msg.String() {
		case "esc", "q", "enter":
			c.mode = commitsModeList
		}
	}
	return nil
}

func (c *Commits) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.commits)-1 {
			c.cursor++
		}
	case "a":
		c.openEditor(dateutil.Today())
	case "e":
		if len(c.commits) > 0 {
			c.openEditor(c.commits[c.cursor].Date)
		}
	case "d":
		if len(c.commits) > 0 {
			c.mode = commitsModeDelete
		}
	case "enter":
		if len(c.commits) > 0 {
			c.openDetail(c.commits[c.cursor])
		}
	case "q", "esc":
		return Navigate("dashboard")
	}
	return nil
}

func (c *Commits) openEditor(date string) {
	c.mode = commitsModeEdit
	c.editDate = date
	c.message = ""

	entry, err := c.tracker.Commits.Get(date)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.err = err
		return
	}
	values := [fieldCount]string{entry.Title, entry.Description, entry.Notes}
	for i := range c.inputs {
		c.inputs[i].SetValue(values[i])
		c.inputs[i].Blur()
	}
	c.focused = fieldTitle
	c.inputs[c.focused].Focus()
}

func (c *Commits) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		c.mode = commitsModeList
		return nil
	case "tab", "shift+tab", "enter":
		if msg.String() == "enter" && c.focused == fieldNotes {
			return c.save()
		}
		c.inputs[c.focused].Blur()
		if msg.String() == "shift+tab" {
			c.focused = (c.focused + fieldCount - 1) % fieldCount
		} else {
			c.focused = (c.focused + 1) % fieldCount
		}
		c.inputs[c.focused].Focus()
		return nil
	case "ctrl+s":
		return c.save()
	}

	var cmd tea.Cmd
	c.inputs[c.focused], cmd = c.inputs[c.focused].Update(msg)
	return cmd
}

func (c *Commits) save() tea.Cmd {
	_, err := c.tracker.SaveCommit(
		c.editDate,
		c.inputs[fieldTitle].Value(),
		c.inputs[fieldDescription].Value(),
		c.inputs[fieldNotes].Value(),
	)

	var vErr *repository.ValidationError
	if errors.As(err, &vErr) {
		c.message = vErr.Error()
		return nil
	}
	if err != nil {
		c.err = err
		return nil
	}

	c.mode = commitsModeList
	return c.Init()
}

func (c *Commits) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		if err := c.tracker.DeleteCommit(c.commits[c.cursor].Date); err != nil {
			c.err = err
		}
		c.mode = commitsModeList
		return c.Init()
	case "n", "esc":
		c.mode = commitsModeList
	}
	return nil
}

func (c *Commits) openDetail(commit models.Commit) {
	c.mode = commitsModeDetail

	body := fmt.Sprintf("# %s\n\n%s\n", commit.Title, commit.Description)
	if commit.Notes != "" {
		body += "\n" + commit.Notes + "\n"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(GlamourStyle(c.theme)),
		glamour.WithWordWrap(min(c.width-4, 80)),
	)
	if err != nil {
		c.detail = body
		return
	}
	out, err := renderer.Render(body)
	if err != nil {
		c.detail = body
		return
	}
	c.detail = out
}

func (c *Commits) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("COMMITS"))
	b.WriteString("\n")

	if c.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if c.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", c.err)))
		b.WriteString("\n")
		return b.String()
	}

	switch c.mode {
	case commitsModeEdit:
		return c.viewEditor(&b)
	case commitsModeDetail:
		b.WriteString(c.detail)
		b.WriteString(HelpStyle.Render("[esc] Back"))
		return b.String()
	}

	if len(c.commits) == 0 {
		b.WriteString(DimStyle.Render("No commits yet. Press 'a' to log today."))
		b.WriteString("\n")
	}

	for i, commit := range c.commits {
		line := fmt.Sprintf("%s  %s", dateutil.FormatShort(commit.Date), commit.Title)
		if i == c.cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if c.mode == commitsModeDelete {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(
			fmt.Sprintf("Delete commit for %s? [y/n]", c.commits[c.cursor].Date)))
		b.WriteString("\n")
	}

	help := "[a] Add today  [e] Edit  [d] Delete  [enter] View  [esc] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func (c *Commits) viewEditor(b *strings.Builder) string {
	b.WriteString(SubtitleStyle.Render("Entry for " + dateutil.Format(c.editDate)))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Title", "Description", "Notes"}
	for i := range c.inputs {
		b.WriteString(DimStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(c.inputs[i].View())
		b.WriteString("\n\n")
	}

	if c.message != "" {
		b.WriteString(WarningStyle.Render(c.message))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("[tab] Next field  [ctrl+s] Save  [esc] Cancel"))
	return b.String()
}
