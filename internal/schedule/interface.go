package schedule

import (
	"context"
	"time"

	"personal-task-scheduler/internal/model"
)

// UseCase defines the business logic interface for the schedule domain:
// analyzing free-text tasks, driving the interactive scheduling session,
// and managing the booked schedule.
type UseCase interface {
	// Schedule analyzes the description, computes a suggested slot, and
	// opens a scheduling session for the user (replacing any prior one).
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// SelectDay scopes the user's session to a day and returns that day's
	// availability grid.
	SelectDay(ctx context.Context, sc model.Scope, date time.Time) (SlotsOutput, error)

	// SelectTime holds a slot as the session's pending selection.
	// Returns scheduler.ErrSlotTaken when it overlaps an existing booking.
	SelectTime(ctx context.Context, sc model.Scope, slot model.TimeSlot) (SelectionOutput, error)

	// Back returns the session to day selection.
	Back(ctx context.Context, sc model.Scope) (ScheduleOutput, error)

	// Confirm commits the pending selection, persists the scheduled task,
	// and closes the session. The only path that books anything.
	Confirm(ctx context.Context, sc model.Scope) (ConfirmOutput, error)

	// Cancel aborts the session; nothing is persisted.
	Cancel(ctx context.Context, sc model.Scope) error

	// Slots returns the availability grid for a day without touching any
	// session.
	Slots(ctx context.Context, sc model.Scope, input SlotsInput) (SlotsOutput, error)

	// List returns scheduled tasks for a date or range, ordered by slot
	// start ascending.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Complete marks a scheduled task done.
	Complete(ctx context.Context, sc model.Scope, id string) error

	// Remove deletes a scheduled task.
	Remove(ctx context.Context, sc model.Scope, id string) error

	// Update reschedules or edits a scheduled task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.ScheduledTask, error)
}
