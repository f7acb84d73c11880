// Package config resolves task-cli settings from flags, environment and global config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultTasksFile is the tasks file used when nothing else is configured,
	// relative to the working directory.
	DefaultTasksFile = "tasks.json"
	// DefaultLogLevel keeps routine output quiet; load failures still surface.
	DefaultLogLevel = "warn"

	EnvTasksFile = "TASK_CLI_FILE"
	EnvLogLevel  = "TASK_CLI_LOG_LEVEL"
)

// ValidLogLevels lists the supported log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ResolveTasksPath picks the tasks file path.
// Precedence: flag value, TASK_CLI_FILE, global config tasks_file, DefaultTasksFile.
func ResolveTasksPath(flagValue string) string {
	if flagValue != "" {
		return ExpandPath(flagValue)
	}
	if env := os.Getenv(EnvTasksFile); env != "" {
		return ExpandPath(env)
	}
	if path := GetTasksFile(); path != "" {
		return path
	}
	return DefaultTasksFile
}

// ResolveLogLevel picks the log level with the same precedence as ResolveTasksPath.
func ResolveLogLevel(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		return env
	}
	if level := GetLogLevel(); level != "" {
		return level
	}
	return DefaultLogLevel
}

// ValidateLogLevel checks that the level value is valid.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil // Empty defaults to DefaultLogLevel
	}

	for _, valid := range ValidLogLevels {
		if strings.EqualFold(level, valid) {
			return nil
		}
	}

	return fmt.Errorf("invalid log_level: %s (valid: %v)", level, ValidLogLevels)
}

// ValidateTasksFile checks that the tasks file can live at path:
// its directory must exist and path itself must not be a directory.
func ValidateTasksFile(path string) error {
	if path == "" {
		return nil // Empty is allowed (use the default)
	}

	expandedPath := ExpandPath(path)

	dir := filepath.Dir(expandedPath)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	if info, err := os.Stat(expandedPath); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory: %s", expandedPath)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
