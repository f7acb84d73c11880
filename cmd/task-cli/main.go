// Package main provides the task-cli entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// taskGroupID groups the task commands in help output.
const taskGroupID = "tasks"

// Global flags
var (
	jsonOutput bool
	tasksFile  string
	logLevel   string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

var rootCmd = &cobra.Command{
	Use:   "task-cli",
	Short: "Track tasks in a local tasks.json file",
	Long: `task-cli tracks a single user's tasks in a local JSON file.

Each invocation loads tasks.json, runs one command and, if the command
changed anything, writes the file back. Tasks move through three
statuses: todo, in-progress and done.

Concurrent invocations on the same file are not coordinated: the last
save wins.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errorf(ExitUsageError, "invalid command: expected one of %s", strings.Join(commandNames(cmd), ", "))
	},
}

func init() {
	// Load .env file if present (for TASK_CLI_FILE); existing environment wins
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of human-readable lines")
	rootCmd.PersistentFlags().StringVarP(&tasksFile, "file", "f", "", "Path to the tasks file (default: $TASK_CLI_FILE, config tasks_file, or ./tasks.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Version = Version
	rootCmd.AddGroup(&cobra.Group{ID: taskGroupID, Title: "Task Commands:"})
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var ce *cliError
	if !errors.As(err, &ce) {
		// Anything cobra rejects before a command runs is a usage problem
		msg := err.Error()
		if strings.HasPrefix(msg, "unknown command") {
			msg = "invalid command: " + msg
		}
		ce = &cliError{Code: ExitUsageError, Msg: strings.TrimSpace(msg)}
	}

	if jsonOutput {
		outputJSON(stdout, ErrorResponse{Error: ce.Msg})
	} else {
		fmt.Fprintf(stderr, "error: %s\n", ce.Msg)
	}
	return ce.Code
}

// commandNames lists the task commands of root for the invalid-command message.
func commandNames(root *cobra.Command) []string {
	var names []string
	for _, c := range root.Commands() {
		if c.GroupID == taskGroupID {
			names = append(names, c.Name())
		}
	}
	return names
}
