package main

import (
	"fmt"
	"io"
	"os"

	"github.com/matsen/task-cli/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json, yaml, toml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as JSON, YAML or TOML",
	Long: `Export all tasks. JSON output has the same layout as the tasks file.

Examples:
  task-cli export --format yaml
  task-cli export --format toml -o tasks.toml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return errorf(ExitUsageError, "%v", err)
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return errorf(ExitError, "creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, s.tracker.Tasks(), format); err != nil {
		return errorf(ExitError, "exporting tasks: %v", err)
	}

	if exportOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d tasks to %s\n", len(s.tracker.Tasks()), exportOutput)
	}
	return nil
}
