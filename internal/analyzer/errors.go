package analyzer

import "errors"

// ErrEmptyDescription is returned when there is nothing to analyze.
var ErrEmptyDescription = errors.New("task description is empty")

// DefaultDurationMinutes is used when the model gives no usable estimate.
const DefaultDurationMinutes = 30
