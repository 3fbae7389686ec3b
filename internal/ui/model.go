package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist.com/todolist/internal/board"
)

// focus says which input receives key presses.
type focus int

const (
	focusList focus = iota
	focusNewTask
	focusSearch
	focusEdit
)

type model struct {
	state  board.State
	focus  focus
	cursor int // index into state.Visible()

	input textinput.Model
	help  help.Model
	now   func() time.Time
}

func newModel(now func() time.Time) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return model{
		state: board.New(),
		input: ti,
		help:  help.New(),
		now:   now,
	}
}

// Run opens the board on the terminal until the user quits. Tasks are kept
// in memory only.
func Run() error {
	p := tea.NewProgram(newModel(time.Now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus != focusList {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusNewTask:
		switch {
		case key.Matches(msg, keys.Add):
			m.state = m.state.Add(m.now())
			return m.leaveInput(), nil
		case key.Matches(msg, keys.Back):
			return m.leaveInput(), nil
		}
	case focusSearch:
		if key.Matches(msg, keys.Add) || key.Matches(msg, keys.Back) {
			return m.leaveInput(), nil
		}
	case focusEdit:
		// Saving is the only way out of edit mode.
		if key.Matches(msg, keys.Add) {
			m.state = m.state.SaveEdit()
			return m.leaveInput(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	switch m.focus {
	case focusNewTask:
		m.state = m.state.SetNewTask(m.input.Value())
	case focusSearch:
		m.state = m.state.SetSearchTerm(m.input.Value())
		m.clampCursor()
	case focusEdit:
		m.state = m.state.SetEditedName(m.input.Value())
	}
	return m, cmd
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.state.Visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.NewTask):
		return m.enterInput(focusNewTask, m.state.NewTask, "Enter new task")
	case key.Matches(msg, keys.Search):
		return m.enterInput(focusSearch, m.state.SearchTerm, "Search tasks...")
	case key.Matches(msg, keys.Category):
		cats := board.Categories()
		n := int(msg.String()[0] - '1')
		m.state = m.state.ToggleCategory(cats[n])
		m.clampCursor()
	case key.Matches(msg, keys.Add):
		m.state = m.state.Add(m.now())
		m.clampCursor()
	case key.Matches(msg, keys.ToggleList):
		m.state = m.state.ToggleList()
		m.clampCursor()
	case key.Matches(msg, keys.ToggleDone):
		if t, ok := m.selected(); ok {
			m.state = m.state.ToggleDone(t.ID)
		}
	case key.Matches(msg, keys.Delete):
		if t, ok := m.selected(); ok {
			m.state = m.state.Delete(t.ID)
			m.clampCursor()
		}
	case key.Matches(msg, keys.Edit):
		if t, ok := m.selected(); ok {
			m.state = m.state.BeginEdit(t.ID)
			return m.enterInput(focusEdit, m.state.EditedName, "Edit task")
		}
	}
	return m, nil
}

func (m model) enterInput(f focus, value, placeholder string) (tea.Model, tea.Cmd) {
	m.focus = f
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m model) leaveInput() model {
	m.focus = focusList
	m.input.SetValue("")
	m.input.Blur()
	m.clampCursor()
	return m
}

func (m model) selected() (board.Task, bool) {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return board.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *model) clampCursor() {
	n := len(m.state.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) View() string {
	var b strings.Builder

	done, pending := m.state.Stats()
	fmt.Fprintf(&b, "%s   %s %d  %s %d  %s %d\n\n",
		titleStyle.Render("To-Do List"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), len(m.state.Tasks),
	)

	b.WriteString(m.formView())
	b.WriteString("\n\n")

	if m.state.ListOpen {
		b.WriteString(m.lineOrInput(focusSearch, "Search: ", m.state.SearchTerm))
		b.WriteString("\n\n")
		b.WriteString(m.listView())
	} else {
		b.WriteString(mutedStyle.Render("(list hidden)"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	return panelStyle.Render(b.String())
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString(m.lineOrInput(focusNewTask, "New task: ", m.state.NewTask))
	b.WriteString("\n")

	chips := make([]string, 0, len(board.Categories()))
	for i, c := range board.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		if m.state.IsSelected(c) {
			chips = append(chips, chipOnStyle.Render(label))
		} else {
			chips = append(chips, chipOffStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	return b.String()
}

func (m model) listView() string {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return mutedStyle.Render("No tasks found.")
	}

	lines := make([]string, 0, len(visible))
	for i, t := range visible {
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}

		box := mutedStyle.Render(boxUnchecked)
		name := t.Name
		if t.Done {
			box = successStyle.Render(boxChecked)
			name = doneStyle.Render(name)
		}

		if m.focus == focusEdit && m.state.Editing && m.state.EditingID == t.ID {
			name = m.input.View()
		}

		lines = append(lines, fmt.Sprintf("%s%s %s  %s\n    %s",
			prefix, box, name,
			accentStyle.Render(string(t.Category)),
			mutedStyle.Render(t.DateAdded),
		))
	}
	return strings.Join(lines, "\n")
}

func (m model) lineOrInput(f focus, label, value string) string {
	if m.focus == f {
		return label + m.input.View()
	}
	if value == "" {
		return label + mutedStyle.Render("-")
	}
	return label + value
}
