// Package store owns the in-memory task collection and persists the whole
// collection after every mutation.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/tasklist/internal/model"
)

// Repository loads and overwrites the persisted collection.
type Repository interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

// Listener receives a copy of the collection after each successful persist.
type Listener func(tasks []model.Task)

type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides task id generation.
func WithIDGenerator(next func() string) Option {
	return func(s *Store) { s.newID = next }
}

// Store is not safe for concurrent use; every call is expected to come from
// the single UI event loop.
type Store struct {
	repo      Repository
	tasks     []model.Task
	now       func() time.Time
	newID     func() string
	listeners []subscription
	nextSub   int
}

type subscription struct {
	id int
	fn Listener
}

func New(repo Repository, opts ...Option) (*Store, error) {
	if repo == nil {
		return nil, errors.New("store: nil repository")
	}
	s := &Store{
		repo:  repo,
		tasks: []model.Task{},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load replaces the in-memory collection with the persisted one and notifies
// listeners.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return err
	}
	s.tasks = tasks
	s.notify()
	return nil
}

// Tasks returns a copy of the collection in storage order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id string) (model.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx], true
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Add prepends a new task ordered before every existing one. Text that trims
// to empty is ignored and reported as ok=false.
func (s *Store) Add(ctx context.Context, text, category string) (model.Task, bool, error) {
	clean, ok := model.CleanText(text)
	if !ok {
		return model.Task{}, false, nil
	}
	task := model.Task{
		ID:       s.newID(),
		Text:     clean,
		Category: model.NormalizeCategory(category),
		Date:     s.now().UTC().Truncate(time.Millisecond),
		Order:    s.nextOrder(),
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	if err := s.persist(ctx); err != nil {
		return task, true, err
	}
	return task, true, nil
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	s.tasks = append(s.tasks[:idx:idx], s.tasks[idx+1:]...)
	return true, s.persist(ctx)
}

func (s *Store) ToggleComplete(ctx context.Context, id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	s.tasks[idx].Completed = !s.tasks[idx].Completed
	return true, s.persist(ctx)
}

// Edit overwrites text and category only.
func (s *Store) Edit(ctx context.Context, id, text, category string) (bool, error) {
	clean, ok := model.CleanText(text)
	if !ok {
		return false, nil
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	s.tasks[idx].Text = clean
	s.tasks[idx].Category = model.NormalizeCategory(category)
	return true, s.persist(ctx)
}

// Reorder numbers the listed tasks 0, 1, 2, ... in the given sequence.
// Unknown ids are skipped and do not consume a position.
func (s *Store) Reorder(ctx context.Context, ids []string) error {
	pos := 0
	for _, id := range ids {
		if idx := s.indexOf(id); idx >= 0 {
			s.tasks[idx].Order = pos
			pos++
		}
	}
	return s.persist(ctx)
}

// ClearCompleted deletes every completed task and returns how many went.
func (s *Store) ClearCompleted(ctx context.Context) (int, error) {
	kept := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	s.tasks = kept
	return removed, s.persist(ctx)
}

func (s *Store) nextOrder() int {
	if len(s.tasks) == 0 {
		return 0
	}
	lowest := s.tasks[0].Order
	for _, t := range s.tasks[1:] {
		if t.Order < lowest {
			lowest = t.Order
		}
	}
	return lowest - 1
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.SaveTasks(ctx, s.Tasks()); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Store) notify() {
	for _, sub := range s.listeners {
		sub.fn(s.Tasks())
	}
}
