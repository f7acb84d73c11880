package main

import (
	"fmt"
	"strings"

	"github.com/matsen/task-cli/internal/task"
	"github.com/matsen/task-cli/internal/tracker"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:     "add <description>",
	Short:   "Add a new task",
	GroupID: taskGroupID,
	Long: `Add a new task with status todo.

The task gets the next id (highest existing id + 1). Multiple arguments
are joined with spaces. Put -- before a description that starts
with a dash.

Examples:
  task-cli add "Buy groceries"
  task-cli add Call the dentist
  task-cli add -- "-5 degrees outside"`,
	Args: requireArgs(1, "missing description"),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	var added task.Task
	err := mutate(cmd, func(tr *tracker.Tracker) error {
		var err error
		added, err = tr.Add(description)
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		outputJSON(out, TaskResponse{Status: "created", Task: added})
	} else {
		fmt.Fprintf(out, "Task added successfully (ID: %d)\n", added.ID)
	}
	return nil
}
