package usecase

import (
	"context"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/schedule/repository"
	"personal-task-scheduler/internal/scheduler"
)

// Slots returns the availability grid for a day without touching any
// session. Useful for browsing free time before describing a task.
func (uc *implUseCase) Slots(ctx context.Context, sc model.Scope, input schedule.SlotsInput) (schedule.SlotsOutput, error) {
	day := model.DateOf(input.Date)

	existing, err := uc.repo.List(ctx, repository.ListTasksOptions{Date: &day})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Slots.List: %v", err)
		return schedule.SlotsOutput{}, err
	}

	return schedule.SlotsOutput{
		Date:  day,
		Slots: scheduler.AvailableSlots(day, input.DurationMinutes, existing, uc.grid),
	}, nil
}

// List returns scheduled tasks for a date or range, ordered by slot start
// ascending.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input schedule.ListInput) (schedule.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{
		Date:             input.Date,
		From:             input.From,
		To:               input.To,
		IncludeCompleted: input.IncludeCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.List: %v", err)
		return schedule.ListOutput{}, err
	}

	return schedule.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
