package repository

import (
	"time"

	"personal-task-scheduler/internal/model"
)

// CreateTaskOptions holds the parameters for persisting a confirmed task.
type CreateTaskOptions struct {
	Task model.TaskData
	Slot model.TimeSlot
}

// ListTasksOptions filters the schedule. Date takes precedence over
// From/To; all nil means everything.
type ListTasksOptions struct {
	Date             *time.Time
	From             *time.Time
	To               *time.Time
	IncludeCompleted bool
}

// UpdateTaskOptions edits a stored task. Nil fields are left unchanged.
type UpdateTaskOptions struct {
	Slot        *model.TimeSlot
	Description *string
	Priority    *float64
}
