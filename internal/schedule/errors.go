package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrEmptyInput      = errors.New("task description is empty")
	ErrNoActiveSession = errors.New("no active scheduling session")
	ErrTaskNotFound    = errors.New("scheduled task not found")
)
