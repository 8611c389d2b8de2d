package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"commitflow/internal/dateutil"
	"commitflow/internal/models"
	"commitflow/internal/repository"
	"commitflow/internal/tracker"
)

type tasksMode int

const (
	tasksModeList tasksMode = iota
	tasksModeAdd
	tasksModeDelete
)

// taskRow is a display row bound to its absolute position in the
// stored list, which is what toggle and delete address.
type taskRow struct {
	position int
	entry    models.TaskEntry
}

type Tasks struct {
	tracker *tracker.Tracker
	width   int
	height  int

	today   []taskRow
	history []repository.DateGroup
	cursor  int
	mode    tasksMode
	input   textinput.Model
	loading bool
	err     error
	message string
}

func NewTasks(t *tracker.Tracker) *Tasks {
	ti := textinput.New()
	ti.Placeholder = "New task"
	ti.CharLimit = 200
	ti.Width = 50

	return &Tasks{
		tracker: t,
		input:   ti,
	}
}

func (t *Tasks) SetSize(width, height int) {
	t.width = width
	t.height = height
}

type tasksDataMsg struct {
	today   []taskRow
	history []repository.DateGroup
	err     error
}

func (t *Tasks) Init() tea.Cmd {
	t.loading = true
	t.mode = tasksModeList
	t.message = ""
	return t.loadData
}

func (t *Tasks) loadData() tea.Msg {
	today := dateutil.Today()

	all, err := t.tracker.Tasks.List()
	if err != nil {
		return tasksDataMsg{err: err}
	}

	var rows []taskRow
	for i, entry := range all {
		if entry.Date == today {
			rows = append(rows, taskRow{position: i, entry: entry})
		}
	}

	history, err := t.tracker.Tasks.GroupedByDate(today)
	if err != nil {
		return tasksDataMsg{err: err}
	}

	return tasksDataMsg{today: rows, history: history}
}

func (t *Tasks) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tasksDataMsg:
		t.loading = false
		t.err = msg.err
		t.today = msg.today
		t.history = msg.history
		if t.cursor >= len(t.today) {
			t.cursor = max(0, len(t.today)-1)
		}
		return nil

	case RefreshMsg:
		return t.Init()

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if t.mode == tasksModeAdd {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd
	}

	return nil
}

func (t *Tasks) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch t.mode {
	case tasksModeList:
		return t.handleListKey(msg)
	case tasksModeAdd:
		return t.handleAddKey(msg)
	case tasksModeDelete:
		return t.handleDeleteKey(msg)
	}
	return nil
}

func (t *Tasks) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.today)-1 {
			t.cursor++
		}
	case "a":
		t.mode = tasksModeAdd
		t.input.SetValue("")
		t.input.Focus()
	case " ", "enter":
		if len(t.today) > 0 {
			if _, err := t.tracker.ToggleTask(t.today[t.cursor].position); err != nil {
				t.err = err
			}
			return t.Init()
		}
	case "d":
		if len(t.today) > 0 {
			t.mode = tasksModeDelete
		}
	case "q", "esc":
		return Navigate("dashboard")
	}
	return nil
}

func (t *Tasks) handleAddKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		_, err := t.tracker.AddTask(t.input.Value())

		var vErr *repository.ValidationError
		if errors.As(err, &vErr) {
			t.message = vErr.Error()
			return nil
		}
		if err != nil {
			t.err = err
			return nil
		}
		t.mode = tasksModeList
		return t.Init()
	case "esc":
		t.mode = tasksModeList
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *Tasks) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		if err := t.tracker.DeleteTask(t.today[t.cursor].position); err != nil {
			t.err = err
		}
		t.mode = tasksModeList
		return t.Init()
	case "n", "esc":
		t.mode = tasksModeList
	}
	return nil
}

func (t *Tasks) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("TASKS"))
	b.WriteString("\n")

	if t.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if t.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", t.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(SubtitleStyle.Render("Today"))
	b.WriteString("\n")

	if len(t.today) == 0 {
		b.WriteString(DimStyle.Render("  No tasks added yet."))
		b.WriteString("\n")
	}
	for i, row := range t.today {
		mark := "[ ]"
		if row.entry.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, row.entry.Text)
		switch {
		case i == t.cursor && t.mode != tasksModeAdd:
			b.WriteString(SelectedStyle.Render("> " + line))
		case row.entry.Completed:
			b.WriteString("  " + DoneStyle.Render(line))
		default:
			b.WriteString(NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if t.mode == tasksModeAdd {
		b.WriteString("\n")
		b.WriteString(t.input.View())
		b.WriteString("\n")
	}
	if t.message != "" {
		b.WriteString(WarningStyle.Render(t.message))
		b.WriteString("\n")
	}
	if t.mode == tasksModeDelete {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Delete this task? [y/n]"))
		b.WriteString("\n")
	}

	if len(t.history) > 0 {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render("History"))
		b.WriteString("\n")
		for _, group := range t.history {
			b.WriteString(DimStyle.Render(dateutil.Relative(group.Date)))
			b.WriteString("\n")
			for _, entry := range group.Tasks {
				mark := "[ ]"
				if entry.Completed {
					mark = "[x]"
				}
				b.WriteString(DimStyle.Render(fmt.Sprintf("  %s %s", mark, entry.Text)))
				b.WriteString("\n")
			}
		}
	}

	help := "[a] Add  [space] Toggle  [d] Delete  [esc] Back"
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}
