package app

import "github.com/sandeepkv93/tasklist/internal/filter"

// Action is a user gesture forwarded by a presentation layer.
type Action interface {
	actionName() string
}

type AddTask struct {
	Text     string
	Category string
}

type EditTask struct {
	ID       string
	Text     string
	Category string
}

type DeleteTask struct{ ID string }

type ToggleTask struct{ ID string }

type ClearCompleted struct{}

type SetStatusFilter struct{ Status filter.Status }

type SetCategoryFilter struct{ Category string }

type SetSearch struct{ Term string }

type DragStart struct{ ID string }

type DragEnter struct{ ID string }

type DragLeave struct{ ID string }

type Drop struct{ TargetID string }

type DragEnd struct{}

type ToggleTheme struct{}

func (AddTask) actionName() string           { return "add" }
func (EditTask) actionName() string          { return "edit" }
func (DeleteTask) actionName() string        { return "delete" }
func (ToggleTask) actionName() string        { return "toggle" }
func (ClearCompleted) actionName() string    { return "clear_completed" }
func (SetStatusFilter) actionName() string   { return "filter_status" }
func (SetCategoryFilter) actionName() string { return "filter_category" }
func (SetSearch) actionName() string         { return "search" }
func (DragStart) actionName() string         { return "drag_start" }
func (DragEnter) actionName() string         { return "drag_enter" }
func (DragLeave) actionName() string         { return "drag_leave" }
func (Drop) actionName() string              { return "drop" }
func (DragEnd) actionName() string           { return "drag_end" }
func (ToggleTheme) actionName() string       { return "toggle_theme" }
