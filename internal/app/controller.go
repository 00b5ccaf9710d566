// Package app wires the task store, the view filter and the reorder engine
// behind a presentation-agnostic interface: presenters receive rendered views
// and forward user gestures as actions.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/tasklist/internal/filter"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/reorder"
	"github.com/sandeepkv93/tasklist/internal/store"
)

// View is everything a presenter needs to draw one frame.
type View struct {
	Tasks      []model.Task
	Stats      filter.Stats
	Criteria   filter.Criteria
	Dragging   string
	DropTarget string
	DarkTheme  bool
}

type Presenter interface {
	Render(v View)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(View)

func (f PresenterFunc) Render(v View) { f(v) }

// ThemeStore persists the dark theme flag.
type ThemeStore interface {
	LoadDarkTheme(ctx context.Context) (bool, error)
	SaveDarkTheme(ctx context.Context, dark bool) error
}

type Controller struct {
	store       *store.Store
	engine      *reorder.Engine
	themes      ThemeStore
	presenter   Presenter
	logger      *log.Logger
	criteria    filter.Criteria
	dark        bool
	unsubscribe func()
}

// NewController subscribes to s so every persisted mutation re-renders. A nil
// logger discards output.
func NewController(s *store.Store, themes ThemeStore, p Presenter, logger *log.Logger) (*Controller, error) {
	if s == nil || themes == nil || p == nil {
		return nil, errors.New("app: store, theme store and presenter are required")
	}
	engine, err := reorder.NewEngine(s)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		store:     s,
		engine:    engine,
		themes:    themes,
		presenter: p,
		logger:    logger,
		criteria:  filter.DefaultCriteria(),
	}
	c.unsubscribe = s.Subscribe(func([]model.Task) { c.render() })
	return c, nil
}

// Start loads persisted state and renders the first frame.
func (c *Controller) Start(ctx context.Context) error {
	dark, err := c.themes.LoadDarkTheme(ctx)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	c.dark = dark
	if err := c.store.Load(ctx); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	c.logger.Info("tasks loaded", "count", len(c.store.Tasks()), "dark_theme", dark)
	return nil
}

// Close detaches the controller from the store.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) Criteria() filter.Criteria { return c.criteria }
func (c *Controller) DarkTheme() bool           { return c.dark }
func (c *Controller) Dragging() bool            { return c.engine.Dragging() }

// OnUserAction applies a and re-renders. It reports whether a changed any
// state; ignored input and unknown ids report false with a nil error.
func (c *Controller) OnUserAction(ctx context.Context, a Action) (bool, error) {
	changed, err := c.apply(ctx, a)
	if err != nil {
		c.logger.Error("action failed", "action", a.actionName(), "err", err)
		c.render()
		return changed, err
	}
	c.logger.Debug("action", "action", a.actionName(), "changed", changed)
	return changed, nil
}

// Store mutations render through the subscription; everything else renders
// here.
func (c *Controller) apply(ctx context.Context, a Action) (bool, error) {
	switch act := a.(type) {
	case AddTask:
		_, ok, err := c.store.Add(ctx, act.Text, act.Category)
		return ok, err
	case EditTask:
		return c.store.Edit(ctx, act.ID, act.Text, act.Category)
	case DeleteTask:
		return c.store.Delete(ctx, act.ID)
	case ToggleTask:
		return c.store.ToggleComplete(ctx, act.ID)
	case ClearCompleted:
		n, err := c.store.ClearCompleted(ctx)
		return n > 0, err
	case SetStatusFilter:
		status, err := filter.ParseStatus(string(act.Status))
		if err != nil {
			return false, err
		}
		return c.setCriteria(ctx, func(cr *filter.Criteria) { cr.Status = status })
	case SetCategoryFilter:
		category := act.Category
		if category == "" || category == filter.CategoryAll {
			category = filter.CategoryAll
		} else {
			category = string(model.NormalizeCategory(category))
		}
		return c.setCriteria(ctx, func(cr *filter.Criteria) { cr.Category = category })
	case SetSearch:
		return c.setCriteria(ctx, func(cr *filter.Criteria) { cr.Search = act.Term })
	case DragStart:
		ok := c.engine.DragStart(act.ID)
		c.render()
		return ok, nil
	case DragEnter:
		c.engine.DragEnter(act.ID)
		c.render()
		return false, nil
	case DragLeave:
		c.engine.DragLeave(act.ID)
		c.render()
		return false, nil
	case Drop:
		ok := c.engine.Drop(act.TargetID)
		c.render()
		return ok, nil
	case DragEnd:
		if !c.engine.Dragging() {
			return false, nil
		}
		return true, c.engine.DragEnd(ctx)
	case ToggleTheme:
		c.dark = !c.dark
		if err := c.themes.SaveDarkTheme(ctx, c.dark); err != nil {
			return true, fmt.Errorf("save theme: %w", err)
		}
		c.render()
		return true, nil
	default:
		return false, fmt.Errorf("app: unsupported action %T", a)
	}
}

// setCriteria ends any drag in progress before the criteria change.
func (c *Controller) setCriteria(ctx context.Context, update func(*filter.Criteria)) (bool, error) {
	if c.engine.Dragging() {
		if err := c.engine.DragEnd(ctx); err != nil {
			return false, err
		}
	}
	before := c.criteria
	update(&c.criteria)
	c.render()
	return before != c.criteria, nil
}

func (c *Controller) render() {
	visible := filter.Apply(c.store.Tasks(), c.criteria)
	if c.engine.Dragging() {
		visible = arrange(visible, c.engine.Rows())
	} else {
		ids := make([]string, 0, len(visible))
		for _, t := range visible {
			ids = append(ids, t.ID)
		}
		c.engine.SetRows(ids)
	}
	c.presenter.Render(View{
		Tasks:      visible,
		Stats:      filter.ComputeStats(c.store.Tasks()),
		Criteria:   c.criteria,
		Dragging:   c.engine.Dragged(),
		DropTarget: c.engine.DropTarget(),
		DarkTheme:  c.dark,
	})
}

// arrange orders tasks by rows; tasks missing from rows keep their relative
// order at the end.
func arrange(tasks []model.Task, rows []string) []model.Task {
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	out := make([]model.Task, 0, len(tasks))
	placed := make(map[string]bool, len(rows))
	for _, id := range rows {
		if t, ok := byID[id]; ok {
			out = append(out, t)
			placed[id] = true
		}
	}
	for _, t := range tasks {
		if !placed[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
