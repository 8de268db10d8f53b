package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"personal-task-scheduler/internal/analyzer"
	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule/repository"
)

// Test doubles shared by the usecase tests.

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

type mockAnalyzer struct {
	result analyzer.Result
	err    error
}

func (m *mockAnalyzer) Analyze(ctx context.Context, description string) (analyzer.Result, error) {
	if m.err != nil {
		return analyzer.Result{}, m.err
	}
	res := m.result
	if res.Task.Description == "" {
		res.Task.Description = description
	}
	return res, nil
}

// mockRepository is an in-memory ScheduleRepository.
type mockRepository struct {
	tasks   map[string]model.ScheduledTask
	failErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: map[string]model.ScheduledTask{}}
}

func (m *mockRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.ScheduledTask, error) {
	if m.failErr != nil {
		return model.ScheduledTask{}, m.failErr
	}
	task := model.ScheduledTask{
		ID:        uuid.New().String(),
		Task:      opt.Task,
		Slot:      opt.Slot,
		CreatedAt: time.Now(),
	}
	m.tasks[task.ID] = task
	return task, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (model.ScheduledTask, error) {
	task, ok := m.tasks[id]
	if !ok {
		return model.ScheduledTask{}, repository.ErrNotFound
	}
	return task, nil
}

func (m *mockRepository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.ScheduledTask, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var out []model.ScheduledTask
	for _, t := range m.tasks {
		if opt.Date != nil && !t.Slot.Date.Equal(model.DateOf(*opt.Date)) {
			continue
		}
		if !opt.IncludeCompleted && t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepository) Update(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.ScheduledTask, error) {
	task, ok := m.tasks[id]
	if !ok {
		return model.ScheduledTask{}, repository.ErrNotFound
	}
	if opt.Slot != nil {
		task.Slot = *opt.Slot
	}
	if opt.Description != nil {
		task.Task.Description = *opt.Description
	}
	if opt.Priority != nil {
		task.Task.Priority = *opt.Priority
	}
	m.tasks[id] = task
	return task, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func repositoryCreate(task model.TaskData, slot model.TimeSlot) repository.CreateTaskOptions {
	return repository.CreateTaskOptions{Task: task, Slot: slot}
}

func (m *mockRepository) MarkComplete(ctx context.Context, id string) error {
	task, ok := m.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	task.Completed = true
	m.tasks[id] = task
	return nil
}
