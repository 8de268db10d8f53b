package repository

import "errors"

// ErrNotFound is returned when no task exists for the given id.
var ErrNotFound = errors.New("scheduled task not found")
