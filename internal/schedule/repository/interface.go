package repository

import (
	"context"

	"personal-task-scheduler/internal/model"
)

// ScheduleRepository is the interface for schedule data access.
// Implementations own ScheduledTask records and index them by date;
// List returns tasks ordered by slot start ascending.
type ScheduleRepository interface {
	Create(ctx context.Context, opt CreateTaskOptions) (model.ScheduledTask, error)
	Get(ctx context.Context, id string) (model.ScheduledTask, error)
	List(ctx context.Context, opt ListTasksOptions) ([]model.ScheduledTask, error)
	Update(ctx context.Context, id string, opt UpdateTaskOptions) (model.ScheduledTask, error)
	Delete(ctx context.Context, id string) error
	MarkComplete(ctx context.Context, id string) error
}
