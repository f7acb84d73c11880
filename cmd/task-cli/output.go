package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matsen/task-cli/internal/task"
)

// cliError carries an exit code and a user-facing message out of a command.
type cliError struct {
	Code int
	Msg  string
}

func (e *cliError) Error() string {
	return e.Msg
}

// errorf builds a cliError with the given exit code.
func errorf(code int, format string, args ...interface{}) error {
	return &cliError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TaskResponse is the response for commands that create or change one task.
type TaskResponse struct {
	Status string    `json:"status"`
	Task   task.Task `json:"task"`
}

// DeleteResponse is the response for the delete command.
type DeleteResponse struct {
	Status string `json:"status"`
	ID     int    `json:"id"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// formatTaskLine renders one task for list output.
func formatTaskLine(t task.Task) string {
	return fmt.Sprintf("ID: %d, Description: %s, Status: %s, Created At: %s, Updated At: %s",
		t.ID, t.Description, t.Status, t.CreatedAt, t.UpdatedAt)
}

// printTasks writes tasks as lines, or as a JSON array in --json mode.
// An empty list prints nothing in line mode.
func printTasks(w io.Writer, tasks []task.Task) {
	if jsonOutput {
		if tasks == nil {
			tasks = []task.Task{}
		}
		outputJSON(w, tasks)
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, formatTaskLine(t))
	}
}
