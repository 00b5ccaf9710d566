package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header      string
	LeftPane    string
	RightPane   string
	StatusLine  string
	StatusError bool
	Footer      string
	Width       int
	Dark        bool
}

// Theme is the set of styles for one colour scheme.
type Theme struct {
	Header     lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Panel      lipgloss.Style
	Footer     lipgloss.Style
	Muted      lipgloss.Style
	Completed  lipgloss.Style
	Cursor     lipgloss.Style
	Dragging   lipgloss.Style
	DropTarget lipgloss.Style
}

var (
	lightTheme = Theme{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Completed:  lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("246")),
		Cursor:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Dragging:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("153")),
		DropTarget: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("25")),
	}
	darkTheme = Theme{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Completed:  lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("242")),
		Cursor:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Dragging:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237")),
		DropTarget: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12")),
	}
)

func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

func (t Theme) statusStyle(isError bool) lipgloss.Style {
	if isError {
		return t.Error
	}
	return t.Status
}

const defaultWidth = 72

func RenderApp(data AppData) string {
	theme := ThemeFor(data.Dark)
	width := data.Width
	if width <= 0 {
		width = defaultWidth
	}

	panes := []string{theme.Panel.Width(width - 4).Render(data.LeftPane)}
	if strings.TrimSpace(data.RightPane) != "" {
		panes = append(panes, theme.Panel.Width(width-4).Render(data.RightPane))
	}

	status := theme.statusStyle(data.StatusError).Render(data.StatusLine)

	lines := []string{theme.Header.Render(data.Header)}
	lines = append(lines, panes...)
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, theme.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md with the glamour style matching the theme and
// falls back to the raw text when rendering fails.
func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
