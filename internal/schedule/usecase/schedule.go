package usecase

import (
	"context"
	"strings"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/scheduler"
)

// Schedule analyzes the description, computes a suggested slot, and opens
// a fresh session for the user. Any prior session is replaced, so a user
// can always start over by just describing a new task.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input schedule.ScheduleInput) (schedule.ScheduleOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return schedule.ScheduleOutput{}, schedule.ErrEmptyInput
	}

	res, err := uc.analyzer.Analyze(ctx, description)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Schedule.Analyze: %v", err)
		return schedule.ScheduleOutput{}, err
	}
	if res.Degraded {
		uc.l.Warnf(ctx, "schedule.usecase.Schedule: degraded analysis for user %s: %s", sc.UserID, res.Reason)
	}

	now := uc.nowFn()
	suggested := scheduler.Suggest(res.Task, now)

	sess := scheduler.NewSession(res.Task, suggested, now)
	uc.sessions.Put(sc.UserID, sess)

	uc.l.Infof(ctx, "schedule.usecase.Schedule: opened session for user %s, suggested %s", sc.UserID, suggested)

	return schedule.ScheduleOutput{
		Task:           res.Task,
		Suggested:      suggested,
		DayOptions:     sess.DayOptions(),
		State:          sess.State(),
		Degraded:       res.Degraded,
		DegradedReason: res.Reason,
	}, nil
}
