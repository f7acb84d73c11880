package main

import (
	"fmt"
	"strings"

	"github.com/matsen/task-cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set global configuration values",
	Long: `Get or set values in the global config file
($XDG_CONFIG_HOME/task-cli/config.yml).

Usage:
  task-cli config                             # Show all config
  task-cli config tasks-file                  # Get specific value
  task-cli config tasks-file ~/tasks.json     # Set value
  task-cli config log-level debug             # Set log level

Keys:
  tasks-file  Default tasks file when --file and TASK_CLI_FILE are unset
  log-level   Log level (debug, info, warn, error)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	TasksFile string `json:"tasks_file"`
	LogLevel  string `json:"log_level"`
	Path      string `json:"path"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return errorf(ExitDataError, "loading config: %v", err)
	}
	out := cmd.OutOrStdout()

	// No args: show all config
	if len(args) == 0 {
		if jsonOutput {
			outputJSON(out, ConfigResponse{
				TasksFile: cfg.TasksFile,
				LogLevel:  cfg.LogLevel,
				Path:      config.GlobalConfigPath(),
			})
		} else {
			fmt.Fprintf(out, "tasks-file: %s\n", cfg.TasksFile)
			fmt.Fprintf(out, "log-level:  %s\n", cfg.LogLevel)
		}
		return nil
	}

	key := args[0]
	normalizedKey := normalizeKey(key)

	// One arg: get specific value
	if len(args) == 1 {
		var value string
		switch normalizedKey {
		case "tasks-file":
			value = cfg.TasksFile
		case "log-level":
			value = cfg.LogLevel
		default:
			return errorf(ExitUsageError, "unknown configuration key: %s", key)
		}
		if jsonOutput {
			outputJSON(out, map[string]string{strings.ReplaceAll(normalizedKey, "-", "_"): value})
		} else {
			fmt.Fprintln(out, value)
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch normalizedKey {
	case "tasks-file":
		expandedValue := config.ExpandPath(value)
		if err := config.ValidateTasksFile(expandedValue); err != nil {
			return errorf(ExitUsageError, "%v", err)
		}
		cfg.TasksFile = expandedValue
		value = expandedValue

	case "log-level":
		if err := config.ValidateLogLevel(value); err != nil {
			return errorf(ExitUsageError, "%v", err)
		}
		value = strings.ToLower(value)
		cfg.LogLevel = value

	default:
		return errorf(ExitUsageError, "unknown configuration key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		return errorf(ExitError, "saving config: %v", err)
	}

	if jsonOutput {
		outputJSON(out, UpdateResponse{
			Status: "updated",
			Key:    normalizedKey,
			Value:  value,
		})
	} else {
		fmt.Fprintf(out, "Updated %s to %s\n", key, value)
	}
	return nil
}

// normalizeKey converts key formats (tasks-file, tasks_file, TASKS_FILE) to a consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
