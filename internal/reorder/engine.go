// Package reorder implements manual drag-and-drop ordering over the rendered
// row sequence.
package reorder

import (
	"context"
	"errors"
)

type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
)

// Sequencer persists a dense order for the given ids, index = order.
type Sequencer interface {
	Reorder(ctx context.Context, ids []string) error
}

// Engine tracks one drag gesture at a time. Enter/leave/drop only touch the
// transient row sequence; persisted order changes on DragEnd.
type Engine struct {
	seq        Sequencer
	rows       []string
	state      State
	dragged    string
	dropTarget string
}

func NewEngine(seq Sequencer) (*Engine, error) {
	if seq == nil {
		return nil, errors.New("reorder: nil sequencer")
	}
	return &Engine{seq: seq, state: StateIdle}, nil
}

// SetRows replaces the rendered sequence. It is ignored mid-drag so a
// re-render cannot discard a pending drop.
func (e *Engine) SetRows(ids []string) {
	if e.state == StateDragging {
		return
	}
	e.rows = append(e.rows[:0:0], ids...)
}

// Rows returns the current rendered sequence.
func (e *Engine) Rows() []string {
	return append([]string(nil), e.rows...)
}

func (e *Engine) State() State       { return e.state }
func (e *Engine) Dragging() bool     { return e.state == StateDragging }
func (e *Engine) Dragged() string    { return e.dragged }
func (e *Engine) DropTarget() string { return e.dropTarget }

// DragStart captures id. It reports false when already dragging or when id is
// not a rendered row.
func (e *Engine) DragStart(id string) bool {
	if e.state == StateDragging || e.indexOf(id) < 0 {
		return false
	}
	e.state = StateDragging
	e.dragged = id
	e.dropTarget = ""
	return true
}

// DragEnter marks id as the drop target.
func (e *Engine) DragEnter(id string) {
	if e.state != StateDragging || id == e.dragged || e.indexOf(id) < 0 {
		return
	}
	e.dropTarget = id
}

// DragLeave clears the mark when the pointer leaves the marked row.
func (e *Engine) DragLeave(id string) {
	if e.dropTarget == id {
		e.dropTarget = ""
	}
}

// Drop moves the dragged row next to target: after it when the dragged row
// came first, otherwise before it. Dropping a row onto itself does nothing.
func (e *Engine) Drop(target string) bool {
	e.dropTarget = ""
	if e.state != StateDragging || target == e.dragged {
		return false
	}
	from := e.indexOf(e.dragged)
	to := e.indexOf(target)
	if from < 0 || to < 0 {
		return false
	}
	draggedFirst := from < to

	rows := make([]string, 0, len(e.rows))
	for _, id := range e.rows {
		if id == e.dragged {
			continue
		}
		if id == target {
			if draggedFirst {
				rows = append(rows, id, e.dragged)
			} else {
				rows = append(rows, e.dragged, id)
			}
			continue
		}
		rows = append(rows, id)
	}
	e.rows = rows
	return true
}

// DragEnd re-sequences every rendered row to its position and persists,
// whether or not a drop happened. Outside a drag it does nothing.
func (e *Engine) DragEnd(ctx context.Context) error {
	if e.state != StateDragging {
		return nil
	}
	e.state = StateIdle
	e.dragged = ""
	e.dropTarget = ""
	return e.seq.Reorder(ctx, e.Rows())
}

func (e *Engine) indexOf(id string) int {
	for i, row := range e.rows {
		if row == id {
			return i
		}
	}
	return -1
}
