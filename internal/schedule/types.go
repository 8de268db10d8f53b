package schedule

import (
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/scheduler"
)

// ScheduleInput is the free-text task description from the user.
type ScheduleInput struct {
	Description string
}

// ScheduleOutput is a snapshot of a freshly opened (or rewound) session.
type ScheduleOutput struct {
	Task       model.TaskData        `json:"task"`
	Suggested  model.TimeSlot        `json:"suggested"`
	DayOptions []scheduler.DayOption `json:"day_options"`
	State      scheduler.State       `json:"state"`

	// Degraded marks that the analyzer silently fell back to default
	// attributes; Reason says why.
	Degraded       bool   `json:"degraded,omitempty"`
	DegradedReason string `json:"degraded_reason,omitempty"`
}

// SlotsInput asks for a day's availability grid.
type SlotsInput struct {
	Date            time.Time
	DurationMinutes int
}

// SlotsOutput is the availability grid for one day. Suggested is set when
// the session's original suggestion lies on this day.
type SlotsOutput struct {
	Date      time.Time                   `json:"date"`
	Slots     []scheduler.SlotAvailability `json:"slots"`
	Suggested *model.TimeSlot             `json:"suggested,omitempty"`
	State     scheduler.State             `json:"state,omitempty"`
}

// SelectionOutput reports the held pending selection.
type SelectionOutput struct {
	Pending model.TimeSlot  `json:"pending"`
	State   scheduler.State `json:"state"`
}

// ConfirmOutput is the persisted result of a confirmed session.
type ConfirmOutput struct {
	Task model.ScheduledTask `json:"task"`
}

// ListInput filters the schedule. Date takes precedence over From/To.
type ListInput struct {
	Date             *time.Time
	From             *time.Time
	To               *time.Time
	IncludeCompleted bool
}

// ListOutput is the filtered schedule, ordered by slot start ascending.
type ListOutput struct {
	Tasks []model.ScheduledTask `json:"tasks"`
	Count int                   `json:"count"`
}

// UpdateInput edits a scheduled task. Nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Slot        *model.TimeSlot
	Description *string
	Priority    *float64
}
