package main

import (
	"fmt"

	"github.com/matsen/task-cli/internal/task"
	"github.com/matsen/task-cli/internal/tracker"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(markInProgressCmd)
	rootCmd.AddCommand(markDoneCmd)
}

var markInProgressCmd = &cobra.Command{
	Use:     "mark-in-progress <id>",
	Short:   "Mark a task as in-progress",
	GroupID: taskGroupID,
	Args:    exactArgs(1, "missing task id"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(cmd, args[0], task.StatusInProgress)
	},
}

var markDoneCmd = &cobra.Command{
	Use:     "mark-done <id>",
	Short:   "Mark a task as done",
	GroupID: taskGroupID,
	Args:    exactArgs(1, "missing task id"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(cmd, args[0], task.StatusDone)
	},
}

func runMark(cmd *cobra.Command, arg string, status task.Status) error {
	id, err := parseIDArg(arg)
	if err != nil {
		return err
	}

	var marked task.Task
	err = mutate(cmd, func(tr *tracker.Tracker) error {
		var err error
		if status == task.StatusDone {
			marked, err = tr.MarkDone(id)
		} else {
			marked, err = tr.MarkInProgress(id)
		}
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		outputJSON(out, TaskResponse{Status: "updated", Task: marked})
	} else {
		fmt.Fprintf(out, "Task %d marked as %s\n", id, status)
	}
	return nil
}
