package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/app"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeInput()
		m.setStatus("command palette closed")
	case "enter":
		raw := m.input.Value()
		m.closeInput()
		m.executePaletteCommand(raw)
	default:
		m.updateInput(msg)
	}
	return m
}

func (m *Model) executePaletteCommand(raw string) {
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.setError(err)
		return
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			return m.runAction(app.AddTask{Text: a.Text, Category: m.categoryOrDefault(a.Category)},
				fmt.Sprintf("added: %s", a.Text))
		},
		Edit: func(a commands.EditArgs) (commands.Result, error) {
			task, err := m.taskAtRow(a.Row)
			if err != nil {
				return commands.Result{}, err
			}
			category := a.Category
			if category == "" {
				category = string(task.Category)
			}
			return m.runAction(app.EditTask{ID: task.ID, Text: a.Text, Category: category},
				fmt.Sprintf("edited row %d", a.Row))
		},
		Delete: func(a commands.RowArgs) (commands.Result, error) {
			task, err := m.taskAtRow(a.Row)
			if err != nil {
				return commands.Result{}, err
			}
			return m.runAction(app.DeleteTask{ID: task.ID}, fmt.Sprintf("deleted: %s", task.Text))
		},
		Done: func(a commands.RowArgs) (commands.Result, error) {
			task, err := m.taskAtRow(a.Row)
			if err != nil {
				return commands.Result{}, err
			}
			return m.runAction(app.ToggleTask{ID: task.ID}, fmt.Sprintf("toggled: %s", task.Text))
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			return m.runAction(app.SetStatusFilter{Status: a.Status}, fmt.Sprintf("showing %s tasks", a.Status))
		},
		Category: func(a commands.CategoryArgs) (commands.Result, error) {
			return m.runAction(app.SetCategoryFilter{Category: a.Name}, fmt.Sprintf("category: %s", a.Name))
		},
		Search: func(a commands.SearchArgs) (commands.Result, error) {
			if a.Term == "" {
				return m.runAction(app.SetSearch{}, "search cleared")
			}
			return m.runAction(app.SetSearch{Term: a.Term}, fmt.Sprintf("search: %s", a.Term))
		},
		Theme: func() (commands.Result, error) {
			return m.runAction(app.ToggleTheme{}, "theme toggled")
		},
		Clear: func() (commands.Result, error) {
			return m.runAction(app.ClearCompleted{}, "completed tasks cleared")
		},
	})
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(res.Message)
}

func (m *Model) runAction(a app.Action, message string) (commands.Result, error) {
	if _, err := m.controller.OnUserAction(m.ctx, a); err != nil {
		m.clampCursor()
		return commands.Result{}, err
	}
	m.clampCursor()
	return commands.Result{Message: message}, nil
}

// taskAtRow resolves a 1-based row number against the current view.
func (m Model) taskAtRow(row int) (model.Task, error) {
	rows := m.rows()
	if row < 1 || row > len(rows) {
		return model.Task{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("no task at row %d", row),
		}
	}
	return rows[row-1], nil
}

func (m Model) categoryOrDefault(category string) string {
	if strings.TrimSpace(category) == "" {
		return string(m.cfg.DefaultCategory)
	}
	return category
}
