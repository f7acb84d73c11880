package main

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matsen/task-cli/internal/config"
	"github.com/matsen/task-cli/internal/logging"
	"github.com/matsen/task-cli/internal/storage"
	"github.com/matsen/task-cli/internal/task"
	"github.com/matsen/task-cli/internal/tracker"
	"github.com/spf13/cobra"
)

// now is the clock used for task timestamps; tests replace it.
var now = time.Now

// session is the per-invocation state shared by task commands.
type session struct {
	store   *storage.Store
	tracker *tracker.Tracker
	logger  *log.Logger
}

// openSession resolves configuration, builds the logger and loads the tasks file.
func openSession(cmd *cobra.Command) (*session, error) {
	if _, err := config.LoadGlobalConfig(); err != nil {
		return nil, errorf(ExitDataError, "loading config: %v", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), config.ResolveLogLevel(logLevel))
	store := storage.NewStore(config.ResolveTasksPath(tasksFile), logger)
	logger.Debug("using tasks file", "path", store.Path())
	return &session{
		store:   store,
		tracker: tracker.New(store.Load(), tracker.WithClock(now)),
		logger:  logger,
	}, nil
}

// mutate loads the tasks file, applies fn and saves only if fn succeeded.
func mutate(cmd *cobra.Command, fn func(tr *tracker.Tracker) error) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	if err := fn(s.tracker); err != nil {
		return commandError(err)
	}

	if err := s.store.Save(s.tracker.Tasks()); err != nil {
		return errorf(ExitError, "saving tasks: %v", err)
	}
	return nil
}

// commandError maps domain errors to exit codes.
func commandError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errorf(ExitTaskNotFound, "%v", err)
	case errors.Is(err, task.ErrEmptyDescription),
		errors.Is(err, task.ErrEmptyID),
		errors.Is(err, task.ErrInvalidID),
		errors.Is(err, task.ErrInvalidStatus):
		return errorf(ExitUsageError, "%v", err)
	default:
		return errorf(ExitError, "%v", err)
	}
}

// parseIDArg parses a task id argument as a usage error on failure.
func parseIDArg(arg string) (int, error) {
	id, err := task.ParseID(arg)
	if err != nil {
		return 0, commandError(err)
	}
	return id, nil
}

// requireArgs returns a cobra.PositionalArgs that reports missing arguments with msg.
func requireArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return errorf(ExitUsageError, "%s", msg)
		}
		return nil
	}
}

// exactArgs is requireArgs plus a maximum of n arguments.
func exactArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errorf(ExitUsageError, "%s", msg)
		}
		return nil
	}
}
