package main

import (
	"fmt"

	"github.com/matsen/task-cli/internal/tracker"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a task",
	GroupID: taskGroupID,
	Long: `Delete a task. Its id is not handed out again while a higher id exists.

Examples:
  task-cli delete 3`,
	Args: exactArgs(1, "missing task id"),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	err = mutate(cmd, func(tr *tracker.Tracker) error {
		return tr.Delete(id)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		outputJSON(out, DeleteResponse{Status: "deleted", ID: id})
	} else {
		fmt.Fprintf(out, "Task %d deleted\n", id)
	}
	return nil
}
