// Package storage handles task persistence in a JSON file and an ephemeral SQLite index.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matsen/task-cli/internal/task"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// tasksSchema describes the structure of tasks.json. It is deliberately loose:
// unknown keys are allowed and every key is optional.
const tasksSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "integer", "minimum": 0},
			"description": {"type": "string"},
			"status": {"type": "string"},
			"createdAt": {"type": "string"},
			"updatedAt": {"type": "string"}
		}
	}
}`

var compiledTasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// Store is a handle on one tasks file.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore returns a store backed by the file at path.
// A nil logger falls back to the charmbracelet default logger.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks from the backing file.
// A missing, blank or unreadable file yields an empty list; failures are logged, not returned.
func (s *Store) Load() []task.Task {
	tasks, err := ReadTasks(s.path)
	if err != nil {
		s.logger.Error("reading tasks, starting with an empty list", "path", s.path, "err", err)
		return nil
	}
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks
}

// Save overwrites the backing file with tasks.
// The write is not atomic; a crash mid-write can leave a truncated file.
func (s *Store) Save(tasks []task.Task) error {
	if err := WriteTasks(s.path, tasks); err != nil {
		s.logger.Error("saving tasks", "path", s.path, "err", err)
		return err
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

// ReadTasks reads all tasks from a tasks file.
func ReadTasks(path string) ([]task.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Missing file is an empty store
		}
		return nil, fmt.Errorf("opening tasks file: %w", err)
	}
	defer f.Close()

	return ReadTasksFrom(f)
}

// ReadTasksFrom decodes a tasks document.
func ReadTasksFrom(r io.Reader) ([]task.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tasks file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing tasks file: %w", err)
	}
	if err := compiledTasksSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validating tasks file: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}

	seen := make(map[int]bool, len(tasks))
	for i, t := range tasks {
		if t.Status == "" {
			tasks[i].Status = task.StatusTodo
		}
		if t.ID <= 0 {
			continue
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: %d", task.ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true
	}

	return tasks, nil
}

// WriteTasks writes all tasks to a tasks file, replacing existing content.
func WriteTasks(path string, tasks []task.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tasks file: %w", err)
	}

	if err := EncodeTasks(f, tasks); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing tasks file: %w", err)
	}
	return nil
}

// EncodeTasks writes tasks as a JSON array with one compact object per line.
func EncodeTasks(w io.Writer, tasks []task.Task) error {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		line, err := encodeTask(t)
		if err != nil {
			return fmt.Errorf("encoding task %d: %w", t.ID, err)
		}
		lines = append(lines, "  "+line)
	}

	var b strings.Builder
	b.WriteString("[\n")
	if len(lines) > 0 {
		b.WriteString(strings.Join(lines, ",\n"))
		b.WriteString("\n")
	}
	b.WriteString("]\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing tasks: %w", err)
	}
	return nil
}

// encodeTask marshals a task without HTML escaping or a trailing newline.
func encodeTask(t task.Task) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(t); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// FindTaskByID searches for a task by its ID in an in-memory slice.
// Returns the index and true if found, -1 and false otherwise.
func FindTaskByID(tasks []task.Task, id int) (int, bool) {
	for i, t := range tasks {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// DeleteTaskFromSlice removes the task with id, preserving the order of the rest.
// Returns the updated slice and true if the task was found and removed.
func DeleteTaskFromSlice(tasks []task.Task, id int) ([]task.Task, bool) {
	idx, found := FindTaskByID(tasks, id)
	if !found {
		return tasks, false
	}
	return append(tasks[:idx], tasks[idx+1:]...), true
}

// NextID returns max(existing id) + 1, or 1 for an empty list.
func NextID(tasks []task.Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
