package main

import (
	"fmt"
	"strings"

	"github.com/matsen/task-cli/internal/task"
	"github.com/matsen/task-cli/internal/tracker"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:     "update <id> <description>",
	Short:   "Replace a task's description",
	GroupID: taskGroupID,
	Long: `Replace the description of an existing task and refresh its updatedAt.

Put -- before the id when the new description starts with a dash.

Examples:
  task-cli update 1 "Buy groceries and cook dinner"
  task-cli update -- 1 "-5 degrees outside"`,
	Args: requireArgs(2, "missing task id or description"),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}
	description := strings.Join(args[1:], " ")
	if strings.TrimSpace(description) == "" {
		return commandError(task.ErrEmptyDescription)
	}

	var updated task.Task
	err = mutate(cmd, func(tr *tracker.Tracker) error {
		var err error
		updated, err = tr.Update(id, description)
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		outputJSON(out, TaskResponse{Status: "updated", Task: updated})
	} else {
		fmt.Fprintf(out, "Task %d updated\n", id)
	}
	return nil
}
