package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tasklist/internal/filter"
	"github.com/sandeepkv93/tasklist/internal/views"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Toggle   key.Binding
	Status   key.Binding
	Category key.Binding
	Search   key.Binding
	Move     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	Theme    key.Binding
	Palette  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Status:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle status filter")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle category filter")),
		Search:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search")),
		Move:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pick up task to move")),
		Drop:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop moved task")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel move")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Palette:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Move, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Toggle},
		{k.Status, k.Category, k.Search, k.Theme},
		{k.Move, k.Drop, k.Cancel},
		{k.Palette, k.Help, k.Quit},
	}
}

// dragKeyMap is shown while a task is being moved.
type dragKeyMap struct{ keys keyMap }

func (d dragKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Up, d.keys.Down, d.keys.Drop, d.keys.Cancel}
}

func (d dragKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{d.ShortHelp()} }

func paletteHelp() string {
	statuses := make([]string, 0, 3)
	for _, s := range filter.Statuses() {
		statuses = append(statuses, string(s))
	}
	return "`add <text> [#category]`, `edit <n> <text> [#category]`, `delete <n>`, `done <n>`, " +
		fmt.Sprintf("`filter %s`, ", strings.Join(statuses, "|")) +
		"`category <name|all>`, `search [term]`, `theme`, `clear`"
}

func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n| key | action |\n| --- | --- |\n")
	for _, group := range m.Keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("| `%s` | %s |\n", h.Key, h.Desc))
		}
	}
	b.WriteString("\n## Command palette\n\n")
	b.WriteString(paletteHelp())
	b.WriteString("\n\nRows are numbered as shown in the current view.\n")
	return b.String()
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: m.helpMarkdown(),
		HelpView: m.helpModel.FullHelpView(m.Keys.FullHelp()),
		Dark:     m.frame().DarkTheme,
	})
}

func (m Model) footer() string {
	if m.controller != nil && m.controller.Dragging() {
		return m.helpModel.View(dragKeyMap{keys: m.Keys})
	}
	return m.helpModel.View(m.Keys)
}
