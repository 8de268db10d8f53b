package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule/repository"
	"personal-task-scheduler/internal/schedule/repository/sqlite"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRepo(t *testing.T) (repository.ScheduleRepository, *sql.DB) {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, &mockLogger{}), db
}

func createAt(t *testing.T, repo repository.ScheduleRepository, date time.Time, hour, durationMinutes int, desc string) model.ScheduledTask {
	t.Helper()
	slot, err := model.SlotAt(date, hour, 0, durationMinutes)
	if err != nil {
		t.Fatalf("SlotAt: %v", err)
	}
	task, err := repo.Create(context.Background(), repository.CreateTaskOptions{
		Task: model.TaskData{
			Description:       desc,
			Type:              model.TaskTypeWork,
			EstimatedDuration: durationMinutes,
			MentalLoad:        model.MentalLoadHigh,
			Priority:          0.7,
		},
		Slot: slot,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return task
}

func TestCreateAndGet(t *testing.T) {
	repo, _ := newRepo(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	deadline := day.AddDate(0, 0, 3)
	slot, _ := model.SlotAt(day, 9, 0, 60)
	created, err := repo.Create(context.Background(), repository.CreateTaskOptions{
		Task: model.TaskData{
			Description:       "write report",
			Type:              model.TaskTypeWork,
			EstimatedDuration: 60,
			MentalLoad:        model.MentalLoadHigh,
			Deadline:          &deadline,
			Priority:          0.9,
			Reasoning:         "deep focus deliverable",
		},
		Slot: slot,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("no id assigned")
	}

	got, err := repo.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Task.Description != "write report" {
		t.Errorf("description = %q", got.Task.Description)
	}
	if got.Task.Type != model.TaskTypeWork || got.Task.MentalLoad != model.MentalLoadHigh {
		t.Errorf("attributes round-trip failed: %+v", got.Task)
	}
	if got.Task.Deadline == nil || !got.Task.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", got.Task.Deadline, deadline)
	}
	if !got.Slot.Start.Equal(slot.Start) || !got.Slot.End.Equal(slot.End) {
		t.Errorf("slot = %s, want %s", got.Slot, slot)
	}
	if got.Completed {
		t.Error("fresh task marked completed")
	}
}

func TestGetNotFound(t *testing.T) {
	repo, _ := newRepo(t)
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestListByDateOrdered(t *testing.T) {
	repo, _ := newRepo(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Insert out of order; List must come back ordered by start time.
	createAt(t, repo, day, 15, 60, "afternoon")
	createAt(t, repo, day, 9, 60, "morning")
	createAt(t, repo, day.AddDate(0, 0, 1), 9, 60, "tomorrow")

	tasks, err := repo.List(context.Background(), repository.ListTasksOptions{Date: &day})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
	if tasks[0].Task.Description != "morning" || tasks[1].Task.Description != "afternoon" {
		t.Errorf("order = %q, %q", tasks[0].Task.Description, tasks[1].Task.Description)
	}
}

func TestListRange(t *testing.T) {
	repo, _ := newRepo(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	createAt(t, repo, day, 9, 60, "day one")
	createAt(t, repo, day.AddDate(0, 0, 1), 9, 60, "day two")
	createAt(t, repo, day.AddDate(0, 0, 5), 9, 60, "day six")

	from := day
	to := day.AddDate(0, 0, 2)
	tasks, err := repo.List(context.Background(), repository.ListTasksOptions{From: &from, To: &to})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
}

func TestMarkCompleteFiltersFromList(t *testing.T) {
	repo, _ := newRepo(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	task := createAt(t, repo, day, 9, 60, "done soon")
	if err := repo.MarkComplete(context.Background(), task.ID); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	tasks, err := repo.List(context.Background(), repository.ListTasksOptions{Date: &day})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("completed task still listed")
	}

	tasks, err = repo.List(context.Background(), repository.ListTasksOptions{Date: &day, IncludeCompleted: true})
	if err != nil {
		t.Fatalf("List include completed: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Errorf("completed task not listed with IncludeCompleted")
	}

	if err := repo.MarkComplete(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateReschedules(t *testing.T) {
	repo, _ := newRepo(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	task := createAt(t, repo, day, 9, 60, "movable")

	newSlot, _ := model.SlotAt(day.AddDate(0, 0, 1), 14, 0, 90)
	updated, err := repo.Update(context.Background(), task.ID, repository.UpdateTaskOptions{Slot: &newSlot})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Slot.Start.Equal(newSlot.Start) {
		t.Errorf("slot = %s, want %s", updated.Slot, newSlot)
	}

	if _, err := repo.Update(context.Background(), "missing", repository.UpdateTaskOptions{Slot: &newSlot}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	repo, _ := newRepo(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	task := createAt(t, repo, day, 9, 60, "ephemeral")
	if err := repo.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), task.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound after delete", err)
	}
	if err := repo.Delete(context.Background(), task.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
