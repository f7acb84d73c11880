package main

import (
	"strings"

	"github.com/matsen/task-cli/internal/storage"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search task descriptions",
	Long: `Search task descriptions with SQLite full-text search.

Queries use FTS5 syntax: words are ANDed, OR and NOT are operators, and
a trailing * matches prefixes. Queries containing any other punctuation
are searched as a single phrase. Results are listed in insertion order.

Examples:
  task-cli search milk
  task-cli search "groc* OR dentist"
  task-cli search report --limit 5 --json`,
	Args: requireArgs(1, "missing search query"),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	results, err := idx.Search(strings.Join(args, " "), searchLimit)
	if err != nil {
		return errorf(ExitUsageError, "search failed: %v", err)
	}

	printTasks(cmd.OutOrStdout(), results)
	return nil
}
