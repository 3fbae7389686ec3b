package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NewTask    key.Binding
	Category   key.Binding
	Add        key.Binding
	Search     key.Binding
	ToggleDone key.Binding
	Edit       key.Binding
	Delete     key.Binding
	ToggleList key.Binding
	Back       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NewTask:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "task name")),
	Category:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "category")),
	Add:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	ToggleDone: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done/undo")),
	Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	ToggleList: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "show/hide list")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTask, k.Category, k.Add, k.Search, k.ToggleDone, k.Edit, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleList},
		{k.NewTask, k.Category, k.Add},
		{k.Search, k.ToggleDone, k.Edit, k.Delete},
		{k.Back, k.Quit},
	}
}
