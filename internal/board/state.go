// Package board holds the task board's client state.
//
// State is a plain value. Every action is a method that returns the next
// State and leaves the receiver untouched, so a front end only has to keep
// the latest value.
package board

import (
	"strings"
	"time"
)

type State struct {
	Tasks []Task

	// NewTask is the text typed into the add form.
	NewTask string
	// Categories are the selected categories in click order. The add form
	// and the list filter share this selection.
	Categories []Category
	SearchTerm string

	Editing    bool
	EditingID  int64
	EditedName string

	ListOpen bool

	lastID int64
}

// New returns an empty board with the list expanded.
func New() State {
	return State{ListOpen: true}
}

func (s State) SetNewTask(text string) State {
	s.NewTask = text
	return s
}

func (s State) SetSearchTerm(text string) State {
	s.SearchTerm = text
	return s
}

func (s State) SetEditedName(text string) State {
	s.EditedName = text
	return s
}

// ToggleCategory selects c when it is not selected and deselects it
// otherwise. Newly selected categories go to the end. Categories outside
// the fixed set are ignored.
func (s State) ToggleCategory(c Category) State {
	if !c.Valid() {
		return s
	}
	next := make([]Category, 0, len(s.Categories)+1)
	found := false
	for _, it := range s.Categories {
		if it == c {
			found = true
			continue
		}
		next = append(next, it)
	}
	if !found {
		next = append(next, c)
	}
	s.Categories = next
	return s
}

// Add appends a task built from the form. It needs a non-empty name and at
// least one selected category; only the first selected category is kept.
// The form text and the category selection are cleared afterwards.
func (s State) Add(now time.Time) State {
	if s.NewTask == "" || len(s.Categories) == 0 {
		return s
	}

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	tasks := make([]Task, len(s.Tasks), len(s.Tasks)+1)
	copy(tasks, s.Tasks)
	s.Tasks = append(tasks, Task{
		ID:        id,
		Name:      s.NewTask,
		Category:  s.Categories[0],
		DateAdded: FormatDateAdded(now),
		Done:      false,
	})
	s.lastID = id
	s.NewTask = ""
	s.Categories = nil
	return s
}

func (s State) Delete(id int64) State {
	tasks := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.Tasks = tasks
	return s
}

func (s State) ToggleDone(id int64) State {
	return s.mapTask(id, func(t Task) Task {
		t.Done = !t.Done
		return t
	})
}

// BeginEdit points the edit cursor at id and copies its name into the
// scratch field. Unknown ids leave the state unchanged.
func (s State) BeginEdit(id int64) State {
	t, ok := s.Find(id)
	if !ok {
		return s
	}
	s.Editing = true
	s.EditingID = id
	s.EditedName = t.Name
	return s
}

// SaveEdit commits the scratch name to the task under the edit cursor and
// leaves edit mode. Only the name is editable.
func (s State) SaveEdit() State {
	if !s.Editing {
		return s
	}
	name := s.EditedName
	s = s.mapTask(s.EditingID, func(t Task) Task {
		t.Name = name
		return t
	})
	s.Editing = false
	s.EditingID = 0
	s.EditedName = ""
	return s
}

func (s State) IsSelected(c Category) bool {
	return containsCategory(s.Categories, c)
}

func (s State) ToggleList() State {
	s.ListOpen = !s.ListOpen
	return s
}

func (s State) Find(id int64) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Visible lists the tasks whose name contains the search term, ignoring
// case, and whose category is selected when any category is selected.
// A collapsed list shows nothing.
func (s State) Visible() []Task {
	if !s.ListOpen {
		return nil
	}

	term := strings.ToLower(s.SearchTerm)
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !strings.Contains(strings.ToLower(t.Name), term) {
			continue
		}
		if len(s.Categories) > 0 && !containsCategory(s.Categories, t.Category) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Stats counts done and pending tasks over the whole board.
func (s State) Stats() (done, pending int) {
	for _, t := range s.Tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s State) mapTask(id int64, fn func(Task) Task) State {
	tasks := make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		if t.ID == id {
			t = fn(t)
		}
		tasks[i] = t
	}
	s.Tasks = tasks
	return s
}
