package usecase

import (
	"context"
	"errors"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/schedule/repository"
	"personal-task-scheduler/internal/scheduler"
)

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return schedule.ErrTaskNotFound
	}
	return err
}

// Complete marks a scheduled task done.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.MarkComplete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Complete: %v", err)
		return mapRepoErr(err)
	}
	uc.l.Infof(ctx, "schedule.usecase.Complete: task %s completed by user %s", id, sc.UserID)
	return nil
}

// Remove deletes a scheduled task.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Remove: %v", err)
		return mapRepoErr(err)
	}
	uc.l.Infof(ctx, "schedule.usecase.Remove: task %s removed by user %s", id, sc.UserID)
	return nil
}

// Update reschedules or edits a scheduled task. A moved task is checked
// against the bookings on its new day before the write.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input schedule.UpdateInput) (model.ScheduledTask, error) {
	if input.Slot != nil {
		if err := uc.checkMoveConflict(ctx, input.ID, *input.Slot); err != nil {
			return model.ScheduledTask{}, err
		}
	}

	updated, err := uc.repo.Update(ctx, input.ID, repository.UpdateTaskOptions{
		Slot:        input.Slot,
		Description: input.Description,
		Priority:    input.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Update: %v", err)
		return model.ScheduledTask{}, mapRepoErr(err)
	}
	return updated, nil
}

func (uc *implUseCase) checkMoveConflict(ctx context.Context, id string, slot model.TimeSlot) error {
	day := model.DateOf(slot.Date)
	existing, err := uc.repo.List(ctx, repository.ListTasksOptions{Date: &day})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Update.List: %v", err)
		return err
	}

	// The task being moved must not conflict with itself.
	others := existing[:0]
	for _, t := range existing {
		if t.ID != id {
			others = append(others, t)
		}
	}
	if scheduler.HasConflict(slot, others) {
		return scheduler.ErrSlotTaken
	}
	return nil
}
