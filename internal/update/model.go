package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/tasklist/internal/app"
	"github.com/sandeepkv93/tasklist/internal/model"
)

type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeAdd     Mode = "add"
	ModeEdit    Mode = "edit"
	ModeSearch  Mode = "search"
	ModePalette Mode = "palette"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Screen is the Presenter the controller renders into. Model copies share it,
// so a frame rendered during Update is visible to the next View call.
type Screen struct {
	frame app.View
}

func NewScreen() *Screen { return &Screen{} }

func (s *Screen) Render(v app.View) { s.frame = v }

// Frame returns the last rendered view.
func (s *Screen) Frame() app.View { return s.frame }

type Model struct {
	Mode        Mode
	Cursor      int
	Status      StatusBar
	HelpVisible bool
	Quitting    bool
	LastError   error
	Keys        keyMap

	ctx        context.Context
	controller *app.Controller
	screen     *Screen
	cfg        RuntimeConfig

	input       textinput.Model
	helpModel   help.Model
	editingID   string
	priorSearch string
	width       int
	statusSeq   int
}

// statusTTL is how long an informational status stays before it is cleared.
// Errors stay until the next status replaces them.
const statusTTL = 4 * time.Second

// ClearStatusMsg clears the status bar if it still shows status number Seq.
type ClearStatusMsg struct {
	Seq int
}

// NewModel expects ctl to render into screen. The controller should already be
// started so the first frame exists.
func NewModel(ctx context.Context, ctl *app.Controller, screen *Screen, cfg RuntimeConfig) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = model.CategoryPersonal
	}
	m := Model{
		Mode:       ModeNormal,
		Keys:       defaultKeyMap(),
		ctx:        ctx,
		controller: ctl,
		screen:     screen,
		cfg:        cfg,
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.input = textinput.New()
	m.input.CharLimit = 256
	m.input.Width = 48
	m.helpModel = help.New()
}

func (m Model) frame() app.View {
	if m.screen == nil {
		return app.View{}
	}
	return m.screen.Frame()
}

func (m Model) rows() []model.Task { return m.frame().Tasks }

// selected returns the task under the cursor.
func (m Model) selected() (model.Task, bool) {
	rows := m.rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return model.Task{}, false
	}
	return rows[m.Cursor], true
}

func (m Model) findRow(id string) (model.Task, bool) {
	for _, t := range m.rows() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) moveCursorTo(id string) {
	for i, t := range m.rows() {
		if t.ID == id {
			m.Cursor = i
			return
		}
	}
	m.clampCursor()
}

// dispatch forwards a to the controller and records failures in the status
// bar. It reports whether a changed state without error.
func (m *Model) dispatch(a app.Action) bool {
	changed, err := m.controller.OnUserAction(m.ctx, a)
	m.clampCursor()
	if err != nil {
		m.setError(err)
		return false
	}
	return changed
}

func (m *Model) setError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.statusSeq++
}

func (m *Model) setStatus(text string) {
	m.Status = StatusBar{Text: text}
	m.statusSeq++
}
