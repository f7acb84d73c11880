package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/matsen/task-cli/internal/storage"
	"github.com/matsen/task-cli/internal/task"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show task counts per status",
	Long: `Show how many tasks are in each status and which task changed last.

Examples:
  task-cli summary
  task-cli summary --json`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

// SummaryResponse is the response for the summary command.
type SummaryResponse struct {
	Total  int                 `json:"total"`
	Counts map[task.Status]int `json:"counts"`
	Latest *task.Task          `json:"latest,omitempty"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	idx, err := storage.OpenIndex()
	if err != nil {
		return errorf(ExitError, "opening index: %v", err)
	}
	defer idx.Close()

	if _, err := idx.RebuildFromTasks(s.tracker.Tasks()); err != nil {
		return errorf(ExitError, "building index: %v", err)
	}
	total, err := idx.Count()
	if err != nil {
		return errorf(ExitError, "counting tasks: %v", err)
	}
	counts, err := idx.CountByStatus()
	if err != nil {
		return errorf(ExitError, "counting tasks: %v", err)
	}
	latest, err := idx.LatestUpdate()
	if err != nil {
		return errorf(ExitError, "finding latest update: %v", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		outputJSON(out, SummaryResponse{Total: total, Counts: counts, Latest: latest})
		return nil
	}

	fmt.Fprintf(out, "%d tasks: %d todo, %d in-progress, %d done\n",
		total, counts[task.StatusTodo], counts[task.StatusInProgress], counts[task.StatusDone])
	if latest != nil {
		fmt.Fprintf(out, "Last updated: task %d (%s)\n", latest.ID, relativeTime(latest.UpdatedAt, now()))
	}
	return nil
}

// relativeTime renders a stored timestamp relative to ref, or the raw value if it does not parse.
func relativeTime(ts string, ref time.Time) string {
	t, err := task.ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	return humanize.RelTime(t, ref, "ago", "from now")
}
