package reorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/tasklist/internal/filter"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSequencer struct {
	calls [][]string
	err   error
}

func (r *recordingSequencer) Reorder(_ context.Context, ids []string) error {
	r.calls = append(r.calls, ids)
	return r.err
}

func newEngine(t *testing.T, rows ...string) (*Engine, *recordingSequencer) {
	t.Helper()
	seq := &recordingSequencer{}
	e, err := NewEngine(seq)
	require.NoError(t, err)
	e.SetRows(rows)
	return e, seq
}

func TestNewEngineRejectsNilSequencer(t *testing.T) {
	_, err := NewEngine(nil)
	require.Error(t, err)
}

func TestDropMovesDraggedRow(t *testing.T) {
	tests := []struct {
		name    string
		dragged string
		target  string
		want    []string
	}{
		{name: "downward lands after target", dragged: "A", target: "B", want: []string{"B", "A", "C"}},
		{name: "downward past several rows", dragged: "A", target: "C", want: []string{"B", "C", "A"}},
		{name: "upward lands before target", dragged: "C", target: "A", want: []string{"C", "A", "B"}},
		{name: "upward by one", dragged: "C", target: "B", want: []string{"A", "C", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine(t, "A", "B", "C")
			require.True(t, e.DragStart(tt.dragged))
			require.True(t, e.Drop(tt.target))
			assert.Equal(t, tt.want, e.Rows())
		})
	}
}

func TestDropOntoSelfIsNoop(t *testing.T) {
	e, _ := newEngine(t, "A", "B", "C")
	require.True(t, e.DragStart("B"))
	assert.False(t, e.Drop("B"))
	assert.Equal(t, []string{"A", "B", "C"}, e.Rows())
	assert.True(t, e.Dragging())
}

func TestDragEndSequencesWithoutDrop(t *testing.T) {
	e, seq := newEngine(t, "A", "B", "C")
	require.True(t, e.DragStart("A"))
	require.NoError(t, e.DragEnd(context.Background()))

	require.Len(t, seq.calls, 1)
	assert.Equal(t, []string{"A", "B", "C"}, seq.calls[0])
	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, e.Dragged())
}

func TestDragEndWhileIdleDoesNothing(t *testing.T) {
	e, seq := newEngine(t, "A")
	require.NoError(t, e.DragEnd(context.Background()))
	assert.Empty(t, seq.calls)
}

func TestEnterAndLeaveOnlyMarkTarget(t *testing.T) {
	e, seq := newEngine(t, "A", "B", "C")
	e.DragEnter("B")
	assert.Empty(t, e.DropTarget(), "no target marking while idle")

	require.True(t, e.DragStart("A"))
	e.DragEnter("A")
	assert.Empty(t, e.DropTarget(), "dragged row is never a target")
	e.DragEnter("B")
	assert.Equal(t, "B", e.DropTarget())
	e.DragLeave("C")
	assert.Equal(t, "B", e.DropTarget())
	e.DragLeave("B")
	assert.Empty(t, e.DropTarget())
	e.DragEnter("missing")
	assert.Empty(t, e.DropTarget())

	assert.Empty(t, seq.calls)
	assert.Equal(t, []string{"A", "B", "C"}, e.Rows())
}

func TestDragStartRules(t *testing.T) {
	e, _ := newEngine(t, "A", "B")
	assert.False(t, e.DragStart("missing"))
	assert.True(t, e.DragStart("A"))
	assert.False(t, e.DragStart("B"), "second drag start while dragging")
	assert.Equal(t, "A", e.Dragged())
}

func TestSetRowsIgnoredMidDrag(t *testing.T) {
	e, _ := newEngine(t, "A", "B", "C")
	require.True(t, e.DragStart("A"))
	require.True(t, e.Drop("B"))
	e.SetRows([]string{"A", "B", "C"})
	assert.Equal(t, []string{"B", "A", "C"}, e.Rows())
}

func TestDropWhileIdleIsNoop(t *testing.T) {
	e, _ := newEngine(t, "A", "B")
	assert.False(t, e.Drop("B"))
	assert.Equal(t, []string{"A", "B"}, e.Rows())
}

func TestDragEndReturnsSequencerError(t *testing.T) {
	e, seq := newEngine(t, "A", "B")
	seq.err = errors.New("quota exceeded")
	require.True(t, e.DragStart("A"))
	err := e.DragEnd(context.Background())
	assert.ErrorIs(t, err, seq.err)
	assert.False(t, e.Dragging())
}

func TestReorderPersistsThroughStore(t *testing.T) {
	ctx := context.Background()
	repo, err := storage.NewTaskRepository(storage.NewMemoryKV())
	require.NoError(t, err)
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	s, err := store.New(repo, store.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	c, _, _ := s.Add(ctx, "C", "work")
	b, _, _ := s.Add(ctx, "B", "work")
	a, _, _ := s.Add(ctx, "A", "work")

	e, err := NewEngine(s)
	require.NoError(t, err)
	visible := filter.Apply(s.Tasks(), filter.DefaultCriteria())
	rows := make([]string, 0, len(visible))
	for _, task := range visible {
		rows = append(rows, task.ID)
	}
	require.Equal(t, []string{a.ID, b.ID, c.ID}, rows)
	e.SetRows(rows)

	require.True(t, e.DragStart(a.ID))
	e.DragEnter(b.ID)
	require.True(t, e.Drop(b.ID))
	require.NoError(t, e.DragEnd(ctx))

	reloaded, err := store.New(repo)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load(ctx))
	view := filter.Apply(reloaded.Tasks(), filter.DefaultCriteria())
	require.Len(t, view, 3)
	wantIDs := []string{b.ID, a.ID, c.ID}
	for i, task := range view {
		assert.Equal(t, wantIDs[i], task.ID)
		assert.Equal(t, i, task.Order)
	}
}
