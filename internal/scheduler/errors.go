package scheduler

import "errors"

// Domain-specific errors for the scheduling core.
var (
	// ErrSlotTaken is the expected, recoverable conflict outcome: the
	// requested slot overlaps an existing booking and the session state is
	// left untouched. Callers offer another slot instead of failing.
	ErrSlotTaken = errors.New("time slot overlaps an existing booking")

	// ErrInvalidTransition marks a session transition that is not valid in
	// the current state. This is a caller bug, not bad user data.
	ErrInvalidTransition = errors.New("invalid session transition")
)
