package views

import (
	"fmt"
	"strings"
	"time"
)

const EmptyState = "No tasks found. Add a new task to get started!"

const dateLayout = "Jan 2, 2006"

type TaskRowData struct {
	ID        string
	Text      string
	Category  string
	Completed bool
	Date      time.Time
}

type TaskListData struct {
	Rows       []TaskRowData
	Cursor     int
	Dragging   string
	DropTarget string
	Dark       bool
}

type StatsData struct {
	Total     int
	Completed int
	Pending   int
}

type FilterBarData struct {
	Status   string
	Category string
	Search   string
}

type HelpPanelData struct {
	Markdown string
	HelpView string
	Dark     bool
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}

func RenderTaskList(data TaskListData) string {
	theme := ThemeFor(data.Dark)
	if len(data.Rows) == 0 {
		return theme.Muted.Render(EmptyState)
	}
	var b strings.Builder
	for i, row := range data.Rows {
		cursor := " "
		if i == data.Cursor {
			cursor = theme.Cursor.Render(">")
		}
		box := "[ ]"
		text := row.Text
		if row.Completed {
			box = "[x]"
			text = theme.Completed.Render(text)
		}
		line := fmt.Sprintf("%s %2d. %s %s  %s  %s", cursor, i+1, box, text,
			theme.Muted.Render("#"+row.Category), theme.Muted.Render(FormatDate(row.Date)))
		switch row.ID {
		case data.Dragging:
			line = theme.Dragging.Render(line + "  (moving)")
		case data.DropTarget:
			line = theme.DropTarget.Render(line + "  <- drop here")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderStats(data StatsData) string {
	return fmt.Sprintf("Total: %d | Completed: %d | Pending: %d", data.Total, data.Completed, data.Pending)
}

func RenderFilterBar(data FilterBarData) string {
	out := fmt.Sprintf("show: %s | category: %s", data.Status, data.Category)
	if data.Search != "" {
		out += fmt.Sprintf(" | search: %q", data.Search)
	}
	return out
}

func RenderHelpPanel(data HelpPanelData) string {
	return strings.TrimSpace(RenderMarkdown(data.Markdown, data.Dark) + "\n\n" + data.HelpView)
}
