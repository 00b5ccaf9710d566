package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/app"
	"github.com/sandeepkv93/tasklist/internal/commands"
	"github.com/sandeepkv93/tasklist/internal/filter"
	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		seq := m.statusSeq
		next, cmd := m.handleKey(typed)
		if next.statusSeq != seq && !next.Status.IsError && next.Status.Text != "" {
			cmd = tea.Batch(cmd, clearStatusAfter(statusTTL, next.statusSeq))
		}
		return next, cmd
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.helpModel.Width = typed.Width
		return m, nil
	case ClearStatusMsg:
		// Ticks for an older status are ignored.
		if typed.Seq == m.statusSeq {
			m.Status = StatusBar{}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.Mode {
	case ModePalette:
		return m.handlePaletteKey(msg), nil
	case ModeAdd, ModeEdit:
		return m.handleEditorKey(msg), nil
	case ModeSearch:
		return m.handleSearchKey(msg), nil
	}
	if m.controller.Dragging() {
		return m.handleDragKey(msg)
	}
	return m.handleNormalKey(msg)
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.rows())-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Add):
		m.openInput(ModeAdd, "add> ", "")
		m.input.Placeholder = "task text #category"
	case key.Matches(msg, m.Keys.Edit):
		task, ok := m.selected()
		if !ok {
			m.setStatus("nothing to edit")
			break
		}
		m.editingID = task.ID
		m.openInput(ModeEdit, "edit> ", fmt.Sprintf("%s #%s", task.Text, task.Category))
	case key.Matches(msg, m.Keys.Delete):
		if task, ok := m.selected(); ok && m.dispatch(app.DeleteTask{ID: task.ID}) {
			m.setStatus("deleted: " + task.Text)
		}
	case key.Matches(msg, m.Keys.Toggle):
		if task, ok := m.selected(); ok && m.dispatch(app.ToggleTask{ID: task.ID}) {
			m.setStatus("toggled: " + task.Text)
		}
	case key.Matches(msg, m.Keys.Status):
		next := m.controller.Criteria().Status.Next()
		if m.dispatch(app.SetStatusFilter{Status: next}) {
			m.setStatus(fmt.Sprintf("showing %s tasks", next))
		}
	case key.Matches(msg, m.Keys.Category):
		next := m.nextCategory()
		if m.dispatch(app.SetCategoryFilter{Category: next}) {
			m.setStatus("category: " + next)
		}
	case key.Matches(msg, m.Keys.Search):
		m.priorSearch = m.controller.Criteria().Search
		m.openInput(ModeSearch, "search> ", m.priorSearch)
	case key.Matches(msg, m.Keys.Move):
		task, ok := m.selected()
		if ok && m.dispatch(app.DragStart{ID: task.ID}) {
			m.setStatus("moving: " + task.Text)
		}
	case key.Matches(msg, m.Keys.Theme):
		m.dispatch(app.ToggleTheme{})
	case key.Matches(msg, m.Keys.Palette):
		m.openInput(ModePalette, "/", "")
		m.setStatus("command palette active")
	}
	return m, nil
}

// handleDragKey moves the drop target with the cursor. Enter drops on the row
// under the cursor and esc ends the move without dropping.
func (m Model) handleDragKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	dragged := m.frame().Dragging
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Up):
		m.retarget(m.Cursor - 1)
	case key.Matches(msg, m.Keys.Down):
		m.retarget(m.Cursor + 1)
	case key.Matches(msg, m.Keys.Drop):
		if target, ok := m.selected(); ok && target.ID != dragged {
			m.dispatch(app.Drop{TargetID: target.ID})
		}
		if m.dispatch(app.DragEnd{}) {
			m.setStatus("task moved")
		}
		m.moveCursorTo(dragged)
	case key.Matches(msg, m.Keys.Cancel):
		if m.dispatch(app.DragEnd{}) {
			m.setStatus("move cancelled")
		}
		m.moveCursorTo(dragged)
	default:
		m.setStatus("press enter to drop or esc to cancel")
	}
	return m, nil
}

func (m *Model) retarget(cursor int) {
	rows := m.rows()
	if cursor < 0 || cursor >= len(rows) {
		return
	}
	if current, ok := m.selected(); ok {
		m.dispatch(app.DragLeave{ID: current.ID})
	}
	m.Cursor = cursor
	m.dispatch(app.DragEnter{ID: rows[cursor].ID})
}

func (m Model) handleEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeInput()
		m.setStatus("cancelled")
	case "enter":
		mode, raw, id := m.Mode, m.input.Value(), m.editingID
		m.closeInput()
		m.submitEditor(mode, raw, id)
	default:
		m.updateInput(msg)
	}
	return m
}

// submitEditor reads raw as "<text> [#category]". Blank text is ignored.
func (m *Model) submitEditor(mode Mode, raw, id string) {
	text, category := commands.SplitTaskInput(raw)
	if text == "" {
		return
	}
	if mode == ModeAdd {
		if m.dispatch(app.AddTask{Text: text, Category: m.categoryOrDefault(category)}) {
			m.Cursor = 0
			m.setStatus("added: " + text)
		}
		return
	}
	if category == "" {
		if task, ok := m.findRow(id); ok {
			category = string(task.Category)
		}
	}
	if m.dispatch(app.EditTask{ID: id, Text: text, Category: category}) {
		m.moveCursorTo(id)
		m.setStatus("edited: " + text)
	}
}

// handleSearchKey filters as the user types; esc restores the earlier term.
func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeInput()
		m.dispatch(app.SetSearch{Term: m.priorSearch})
	case "enter":
		m.closeInput()
	default:
		m.updateInput(msg)
		m.dispatch(app.SetSearch{Term: m.input.Value()})
		m.Cursor = 0
	}
	return m
}

func (m *Model) openInput(mode Mode, prompt, value string) {
	m.Mode = mode
	m.input.Prompt = prompt
	m.input.Placeholder = ""
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.Mode = ModeNormal
	m.editingID = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) updateInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		m.input.SetValue(m.input.Value() + string(msg.Runes))
		m.input.CursorEnd()
	case tea.KeySpace:
		m.input.SetValue(m.input.Value() + " ")
		m.input.CursorEnd()
	default:
		m.input, _ = m.input.Update(msg)
	}
}

func (m Model) nextCategory() string {
	cycle := m.cfg.categoryCycle()
	current := m.controller.Criteria().Category
	for i, name := range cycle {
		if name == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func (m Model) View() string {
	frame := m.frame()
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rows := make([]views.TaskRowData, 0, len(frame.Tasks))
	for _, t := range frame.Tasks {
		rows = append(rows, views.TaskRowData{
			ID:        t.ID,
			Text:      t.Text,
			Category:  string(t.Category),
			Completed: t.Completed,
			Date:      t.Date,
		})
	}
	left := []string{
		views.RenderFilterBar(views.FilterBarData{
			Status:   string(frame.Criteria.Status),
			Category: frame.Criteria.Category,
			Search:   frame.Criteria.Search,
		}),
		"",
		views.RenderTaskList(views.TaskListData{
			Rows:       rows,
			Cursor:     m.Cursor,
			Dragging:   frame.Dragging,
			DropTarget: frame.DropTarget,
			Dark:       frame.DarkTheme,
		}),
		"",
		views.RenderStats(views.StatsData{
			Total:     frame.Stats.Total,
			Completed: frame.Stats.Completed,
			Pending:   frame.Stats.Pending,
		}),
	}
	if m.Mode != ModeNormal {
		left = append(left, "", m.input.View())
	}

	return views.RenderApp(views.AppData{
		Header:      fmt.Sprintf("tasklist | %s", strings.Join(activeFilters(frame.Criteria), " | ")),
		LeftPane:    strings.Join(left, "\n"),
		RightPane:   m.renderHelpIfVisible(),
		StatusLine:  status,
		StatusError: m.Status.IsError,
		Footer:      m.footer(),
		Width:       m.width,
		Dark:        frame.DarkTheme,
	})
}

func activeFilters(c filter.Criteria) []string {
	if !c.IsActive() {
		return []string{"all tasks"}
	}
	var out []string
	if c.Status != filter.StatusAll {
		out = append(out, string(c.Status))
	}
	if c.Category != filter.CategoryAll {
		out = append(out, "#"+c.Category)
	}
	if c.Search != "" {
		out = append(out, fmt.Sprintf("%q", c.Search))
	}
	return out
}
