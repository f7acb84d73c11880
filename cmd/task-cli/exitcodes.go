package main

// Exit codes
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error (runtime failure, tasks file write failure)
	ExitUsageError   = 2 // Invalid command, missing or malformed arguments
	ExitDataError    = 3 // Data error (unreadable or invalid global config)
	ExitTaskNotFound = 4 // Referenced task id does not exist
)
