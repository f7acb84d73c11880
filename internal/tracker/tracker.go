// Package tracker applies task commands to an in-memory task list.
//
// A Tracker owns the ordered list loaded from storage for one invocation.
// Mutations report whether anything changed through their error: callers
// persist the list only after a nil error.
package tracker

import (
	"fmt"
	"time"

	"github.com/matsen/task-cli/internal/storage"
	"github.com/matsen/task-cli/internal/task"
)

// Tracker holds the task list for one invocation.
type Tracker struct {
	tasks []task.Task
	now   func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New returns a tracker over tasks. The slice is owned by the tracker afterwards.
func New(tasks []task.Task, opts ...Option) *Tracker {
	t := &Tracker{tasks: tasks, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tasks returns the current list in insertion order.
func (t *Tracker) Tasks() []task.Task {
	return t.tasks
}

// Add appends a new todo task and returns it.
func (t *Tracker) Add(description string) (task.Task, error) {
	nt, err := task.New(storage.NextID(t.tasks), description, t.now())
	if err != nil {
		return task.Task{}, err
	}
	t.tasks = append(t.tasks, nt)
	return nt, nil
}

// Update replaces the description of task id.
func (t *Tracker) Update(id int, description string) (task.Task, error) {
	idx, err := t.find(id)
	if err != nil {
		return task.Task{}, err
	}
	if err := t.tasks[idx].SetDescription(description, t.now()); err != nil {
		return task.Task{}, err
	}
	return t.tasks[idx], nil
}

// Delete removes task id.
func (t *Tracker) Delete(id int) error {
	tasks, removed := storage.DeleteTaskFromSlice(t.tasks, id)
	if !removed {
		return notFound(id)
	}
	t.tasks = tasks
	return nil
}

// MarkInProgress sets task id to in-progress.
func (t *Tracker) MarkInProgress(id int) (task.Task, error) {
	return t.mark(id, task.StatusInProgress)
}

// MarkDone sets task id to done.
func (t *Tracker) MarkDone(id int) (task.Task, error) {
	return t.mark(id, task.StatusDone)
}

func (t *Tracker) mark(id int, status task.Status) (task.Task, error) {
	idx, err := t.find(id)
	if err != nil {
		return task.Task{}, err
	}
	t.tasks[idx].SetStatus(status, t.now())
	return t.tasks[idx], nil
}

// List returns all tasks, or only those with status filter when filter is non-empty.
// The result is never nil.
func (t *Tracker) List(filter task.Status) []task.Task {
	out := make([]task.Task, 0, len(t.tasks))
	for _, tk := range t.tasks {
		if filter == "" || tk.Status == filter {
			out = append(out, tk)
		}
	}
	return out
}

func (t *Tracker) find(id int) (int, error) {
	idx, found := storage.FindTaskByID(t.tasks, id)
	if !found {
		return -1, notFound(id)
	}
	return idx, nil
}

func notFound(id int) error {
	return fmt.Errorf("%w: %d", task.ErrTaskNotFound, id)
}
