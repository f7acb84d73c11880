package main

import (
	"github.com/matsen/task-cli/internal/task"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list [todo|in-progress|done]",
	Short:   "List tasks, optionally filtered by status",
	GroupID: taskGroupID,
	Long: `List all tasks in insertion order, one per line.

With a status argument only tasks in that status are listed. An empty
result prints nothing. The tasks file is never written.

Examples:
  task-cli list
  task-cli list done
  task-cli list in-progress --json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errorf(ExitUsageError, "list accepts at most one status filter")
		}
		return nil
	},
	ValidArgs: []string{"todo", "in-progress", "done"},
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var filter task.Status
	if len(args) == 1 {
		status, err := task.ParseStatus(args[0])
		if err != nil {
			return commandError(err)
		}
		filter = status
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	printTasks(cmd.OutOrStdout(), s.tracker.List(filter))
	return nil
}
