package task

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{"in-progress", StatusInProgress, false},
		{"done", StatusDone, false},
		{"DONE", StatusDone, false},
		{"  In-Progress ", StatusInProgress, false},
		{"", "", true},
		{"blocked", "", true},
		{"in progress", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("ParseStatus(%q) error = %v, want ErrInvalidStatus", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Status
		wantErr bool
	}{
		{"lower", `"done"`, StatusDone, false},
		{"upper", `"TODO"`, StatusTodo, false},
		{"empty defaults to todo", `""`, StatusTodo, false},
		{"unknown", `"later"`, "", true},
		{"not a string", `3`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Status
			err := json.Unmarshal([]byte(tt.data), &s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if !tt.wantErr && s != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.data, s, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)

	tk, err := New(1, "buy milk", now)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if tk.Status != StatusTodo {
		t.Errorf("Status = %q, want %q", tk.Status, StatusTodo)
	}
	if tk.CreatedAt != "2024-03-01T09:30:00" {
		t.Errorf("CreatedAt = %q, want %q", tk.CreatedAt, "2024-03-01T09:30:00")
	}
	if tk.CreatedAt != tk.UpdatedAt {
		t.Errorf("CreatedAt %q != UpdatedAt %q", tk.CreatedAt, tk.UpdatedAt)
	}

	if _, err := New(1, "   ", now); err != ErrEmptyDescription {
		t.Errorf("New() with blank description error = %v, want %v", err, ErrEmptyDescription)
	}
	if _, err := New(0, "x", now); err != ErrInvalidID {
		t.Errorf("New() with id 0 error = %v, want %v", err, ErrInvalidID)
	}
}

func TestTask_Setters(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	later := created.Add(90 * time.Minute)

	tk, _ := New(4, "draft", created)

	if err := tk.SetDescription("final", later); err != nil {
		t.Fatalf("SetDescription() error = %v", err)
	}
	if tk.Description != "final" {
		t.Errorf("Description = %q, want %q", tk.Description, "final")
	}
	if tk.UpdatedAt != "2024-03-01T11:00:00" {
		t.Errorf("UpdatedAt = %q, want %q", tk.UpdatedAt, "2024-03-01T11:00:00")
	}
	if tk.CreatedAt != "2024-03-01T09:30:00" {
		t.Errorf("CreatedAt changed to %q", tk.CreatedAt)
	}

	if err := tk.SetDescription("", later); err != ErrEmptyDescription {
		t.Errorf("SetDescription(\"\") error = %v, want %v", err, ErrEmptyDescription)
	}

	tk.SetStatus(StatusDone, later.Add(time.Second))
	if tk.Status != StatusDone {
		t.Errorf("Status = %q, want %q", tk.Status, StatusDone)
	}
	if tk.UpdatedAt != "2024-03-01T11:00:01" {
		t.Errorf("UpdatedAt = %q, want %q", tk.UpdatedAt, "2024-03-01T11:00:01")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{"1", 1, nil},
		{" 42 ", 42, nil},
		{"", 0, ErrEmptyID},
		{"0", 0, ErrInvalidID},
		{"-3", 0, ErrInvalidID},
		{"abc", 0, ErrInvalidID},
		{"1.5", 0, ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseID(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 58, 123000000, time.Local)
	s := FormatTimestamp(now)
	if s != "2024-12-31T23:59:58.123" {
		t.Errorf("FormatTimestamp() = %q", s)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		t.Fatalf("ParseTimestamp(%q) error = %v", s, err)
	}
	if !parsed.Equal(now) {
		t.Errorf("ParseTimestamp(%q) = %v, want %v", s, parsed, now)
	}
}
