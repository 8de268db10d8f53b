package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule/repository"
)

// Storage formats. Times are stored as RFC3339 strings, dates as plain
// ISO dates so range filters stay simple string comparisons.
const (
	dateFormat = "2006-01-02"
	timeFormat = time.RFC3339
)

const taskColumns = `id, description, task_type, estimated_duration, mental_load,
	deadline, priority, reasoning, slot_date, slot_start, slot_end, completed, created_at`

// Create persists a confirmed task and assigns its id.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.ScheduledTask, error) {
	task := model.ScheduledTask{
		ID:        uuid.New().String(),
		Task:      opt.Task,
		Slot:      opt.Slot,
		CreatedAt: time.Now(),
	}

	var deadline sql.NullString
	if opt.Task.Deadline != nil {
		deadline = sql.NullString{String: opt.Task.Deadline.Format(timeFormat), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO scheduled_tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		opt.Task.Description,
		string(opt.Task.Type),
		opt.Task.EstimatedDuration,
		string(opt.Task.MentalLoad),
		deadline,
		opt.Task.Priority,
		opt.Task.Reasoning,
		opt.Slot.Date.Format(dateFormat),
		opt.Slot.Start.Format(timeFormat),
		opt.Slot.End.Format(timeFormat),
		0,
		task.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return model.ScheduledTask{}, fmt.Errorf("insert scheduled task: %w", err)
	}

	r.l.Debugf(ctx, "sqlite: created task %s at %s", task.ID, task.Slot)
	return task, nil
}

// Get retrieves one task by id.
func (r *implRepository) Get(ctx context.Context, id string) (model.ScheduledTask, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM scheduled_tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ScheduledTask{}, repository.ErrNotFound
	}
	if err != nil {
		return model.ScheduledTask{}, fmt.Errorf("get scheduled task: %w", err)
	}
	return task, nil
}

// List returns tasks matching the filter, ordered by slot start ascending.
func (r *implRepository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.ScheduledTask, error) {
	var (
		where []string
		args  []any
	)

	switch {
	case opt.Date != nil:
		where = append(where, "slot_date = ?")
		args = append(args, model.DateOf(*opt.Date).Format(dateFormat))
	default:
		if opt.From != nil {
			where = append(where, "slot_date >= ?")
			args = append(args, model.DateOf(*opt.From).Format(dateFormat))
		}
		if opt.To != nil {
			where = append(where, "slot_date <= ?")
			args = append(args, model.DateOf(*opt.To).Format(dateFormat))
		}
	}
	if !opt.IncludeCompleted {
		where = append(where, "completed = 0")
	}

	query := `SELECT ` + taskColumns + ` FROM scheduled_tasks`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY slot_start ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scheduled tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.ScheduledTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scheduled task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update applies the non-nil fields and returns the stored task.
func (r *implRepository) Update(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.ScheduledTask, error) {
	var (
		sets []string
		args []any
	)

	if opt.Slot != nil {
		sets = append(sets, "slot_date = ?", "slot_start = ?", "slot_end = ?")
		args = append(args,
			opt.Slot.Date.Format(dateFormat),
			opt.Slot.Start.Format(timeFormat),
			opt.Slot.End.Format(timeFormat),
		)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *opt.Priority)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		"UPDATE scheduled_tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return model.ScheduledTask{}, fmt.Errorf("update scheduled task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ScheduledTask{}, repository.ErrNotFound
	}

	return r.Get(ctx, id)
}

// Delete removes a task.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM scheduled_tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete scheduled task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// MarkComplete flags a task as done.
func (r *implRepository) MarkComplete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE scheduled_tasks SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark task complete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.ScheduledTask, error) {
	var (
		task      model.ScheduledTask
		taskType  string
		load      string
		deadline  sql.NullString
		slotStart string
		slotEnd   string
		completed int
		createdAt string
	)

	// slot_date exists for indexed filtering only; the slot's date is
	// derived from slot_start on read.
	err := row.Scan(
		&task.ID,
		&task.Task.Description,
		&taskType,
		&task.Task.EstimatedDuration,
		&load,
		&deadline,
		&task.Task.Priority,
		&task.Task.Reasoning,
		new(string),
		&slotStart,
		&slotEnd,
		&completed,
		&createdAt,
	)
	if err != nil {
		return model.ScheduledTask{}, err
	}

	task.Task.Type = model.TaskType(taskType)
	task.Task.MentalLoad = model.MentalLoad(load)
	task.Completed = completed != 0

	if deadline.Valid {
		if t, err := time.Parse(timeFormat, deadline.String); err == nil {
			task.Task.Deadline = &t
		}
	}

	start, err := time.Parse(timeFormat, slotStart)
	if err != nil {
		return model.ScheduledTask{}, fmt.Errorf("parse slot start %q: %w", slotStart, err)
	}
	end, err := time.Parse(timeFormat, slotEnd)
	if err != nil {
		return model.ScheduledTask{}, fmt.Errorf("parse slot end %q: %w", slotEnd, err)
	}
	task.Slot = model.TimeSlot{Date: model.DateOf(start), Start: start, End: end}

	if t, err := time.Parse(timeFormat, createdAt); err == nil {
		task.CreatedAt = t
	}

	return task, nil
}
