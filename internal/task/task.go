// Package task defines the core domain types for tracked tasks.
package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// ValidStatuses lists the supported status values in lifecycle order.
var ValidStatuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// TimestampLayout is the ISO-8601 local date-time layout (no offset) used for
// createdAt and updatedAt.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// Task represents a single to-do item.
// Field order is the on-disk field order.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Validation errors.
var (
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyID          = errors.New("task id is required")
	ErrInvalidID        = errors.New("task id must be a positive integer")
	ErrInvalidStatus    = errors.New("status must be one of: todo, in-progress, done")
	ErrTaskNotFound     = errors.New("task not found")
	ErrDuplicateID      = errors.New("duplicate task id")
)

// ParseStatus converts text to a Status, ignoring case and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidStatuses {
		if normalized == valid {
			return valid, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// UnmarshalJSON normalizes the stored status. An empty status reads as todo.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*s = StatusTodo
		return nil
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Status) String() string {
	return string(s)
}

// New creates a todo task stamped with now.
func New(id int, description string, now time.Time) (Task, error) {
	if id <= 0 {
		return Task{}, ErrInvalidID
	}
	if strings.TrimSpace(description) == "" {
		return Task{}, ErrEmptyDescription
	}
	ts := FormatTimestamp(now)
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}, nil
}

// SetDescription replaces the description and refreshes UpdatedAt.
func (t *Task) SetDescription(description string, now time.Time) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	t.Description = description
	t.UpdatedAt = FormatTimestamp(now)
	return nil
}

// SetStatus changes the status and refreshes UpdatedAt.
func (t *Task) SetStatus(status Status, now time.Time) {
	t.Status = status
	t.UpdatedAt = FormatTimestamp(now)
}

// ParseID parses a command-line task id.
func ParseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyID
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// FormatTimestamp renders t in local time without a zone offset.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// ParseTimestamp parses a createdAt/updatedAt value as local time.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
}
