package usecase

import (
	"context"
	"errors"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/schedule/repository"
	"personal-task-scheduler/internal/scheduler"
	"personal-task-scheduler/internal/scheduler/sessionstore"
)

func mapSessionErr(err error) error {
	if errors.Is(err, sessionstore.ErrNoActiveSession) {
		return schedule.ErrNoActiveSession
	}
	return err
}

// SelectDay scopes the session to a day. The day's bookings are loaded
// here and handed to the session, so every later conflict check inside
// the session runs against this snapshot.
func (uc *implUseCase) SelectDay(ctx context.Context, sc model.Scope, date time.Time) (schedule.SlotsOutput, error) {
	day := model.DateOf(date)

	existing, err := uc.repo.List(ctx, repository.ListTasksOptions{Date: &day})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.SelectDay.List: %v", err)
		return schedule.SlotsOutput{}, err
	}

	var out schedule.SlotsOutput
	err = uc.sessions.Do(sc.UserID, func(sess *scheduler.Session) error {
		if err := sess.SelectDay(day, existing); err != nil {
			return err
		}

		out = schedule.SlotsOutput{
			Date:  day,
			Slots: scheduler.AvailableSlots(day, sess.Task().EstimatedDuration, existing, uc.grid),
			State: sess.State(),
		}
		if suggested, ok := sess.SuggestedSlot(); ok {
			out.Suggested = &suggested
		}
		return nil
	})
	if err != nil {
		return schedule.SlotsOutput{}, mapSessionErr(err)
	}
	return out, nil
}

// SelectTime holds the slot as the session's pending selection. A
// conflicting slot returns scheduler.ErrSlotTaken and leaves the session
// where it was, so the user can pick again.
func (uc *implUseCase) SelectTime(ctx context.Context, sc model.Scope, slot model.TimeSlot) (schedule.SelectionOutput, error) {
	var out schedule.SelectionOutput
	err := uc.sessions.Do(sc.UserID, func(sess *scheduler.Session) error {
		if err := sess.SelectTime(slot); err != nil {
			return err
		}
		out = schedule.SelectionOutput{Pending: slot, State: sess.State()}
		return nil
	})
	if err != nil {
		if errors.Is(err, scheduler.ErrSlotTaken) {
			uc.l.Infof(ctx, "schedule.usecase.SelectTime: slot %s taken for user %s", slot, sc.UserID)
		}
		return schedule.SelectionOutput{}, mapSessionErr(err)
	}
	return out, nil
}

// Back rewinds the session to day selection.
func (uc *implUseCase) Back(ctx context.Context, sc model.Scope) (schedule.ScheduleOutput, error) {
	var out schedule.ScheduleOutput
	err := uc.sessions.Do(sc.UserID, func(sess *scheduler.Session) error {
		if err := sess.Back(); err != nil {
			return err
		}
		out = schedule.ScheduleOutput{
			Task:       sess.Task(),
			Suggested:  sess.Suggested(),
			DayOptions: sess.DayOptions(),
			State:      sess.State(),
		}
		return nil
	})
	if err != nil {
		return schedule.ScheduleOutput{}, mapSessionErr(err)
	}
	return out, nil
}

// Confirm commits the pending selection, persists the task, and closes
// the session. This is the only path that writes to the schedule.
func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope) (schedule.ConfirmOutput, error) {
	var (
		task model.TaskData
		slot model.TimeSlot
	)
	err := uc.sessions.Do(sc.UserID, func(sess *scheduler.Session) error {
		committed, err := sess.Confirm()
		if err != nil {
			return err
		}
		task = sess.Task()
		slot = committed
		return nil
	})
	if err != nil {
		return schedule.ConfirmOutput{}, mapSessionErr(err)
	}

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{Task: task, Slot: slot})
	if err != nil {
		// The session is already in its terminal state; drop it so the
		// user can start over instead of being stuck on a dead session.
		uc.sessions.Remove(sc.UserID)
		uc.l.Errorf(ctx, "schedule.usecase.Confirm.Create: %v", err)
		return schedule.ConfirmOutput{}, err
	}

	uc.sessions.Remove(sc.UserID)
	uc.l.Infof(ctx, "schedule.usecase.Confirm: booked task %s at %s for user %s", created.ID, created.Slot, sc.UserID)

	return schedule.ConfirmOutput{Task: created}, nil
}

// Cancel aborts the session; nothing is persisted.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) error {
	err := uc.sessions.Do(sc.UserID, func(sess *scheduler.Session) error {
		return sess.Cancel()
	})
	if err != nil {
		return mapSessionErr(err)
	}

	uc.sessions.Remove(sc.UserID)
	uc.l.Infof(ctx, "schedule.usecase.Cancel: cancelled session for user %s", sc.UserID)
	return nil
}
