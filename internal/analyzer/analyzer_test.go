package analyzer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-task-scheduler/internal/analyzer"
	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/pkg/datemath"
	"personal-task-scheduler/pkg/gemini"
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

type mockGemini struct {
	text string
	err  error
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.Response{Text: m.text}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

func newAnalyzer(t *testing.T, llm gemini.IGemini) analyzer.Analyzer {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	nowFn := func() time.Time { return time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC) }
	return analyzer.New(&mockLogger{}, llm, dates, nowFn)
}

func TestAnalyzeWellFormedOutput(t *testing.T) {
	a := newAnalyzer(t, &mockGemini{
		text: `{"task_type":"work","estimated_duration_minutes":90,"mental_load":"high","deadline":"2024-01-05","priority":0.8,"reasoning":"deep focus"}`,
	})

	res, err := a.Analyze(context.Background(), "prepare quarterly report")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Degraded {
		t.Fatalf("unexpected degraded result: %s", res.Reason)
	}

	task := res.Task
	if task.Type != model.TaskTypeWork {
		t.Errorf("type = %s, want work", task.Type)
	}
	if task.EstimatedDuration != 90 {
		t.Errorf("duration = %d, want 90", task.EstimatedDuration)
	}
	if task.MentalLoad != model.MentalLoadHigh {
		t.Errorf("load = %s, want high", task.MentalLoad)
	}
	if task.Priority != 0.8 {
		t.Errorf("priority = %f, want 0.8", task.Priority)
	}
	if task.Deadline == nil || !task.Deadline.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("deadline = %v, want 2024-01-05", task.Deadline)
	}
}

func TestAnalyzeStripsCodeFences(t *testing.T) {
	a := newAnalyzer(t, &mockGemini{
		text: "```json\n{\"task_type\":\"exercise\",\"estimated_duration_minutes\":45,\"mental_load\":\"low\",\"deadline\":\"\",\"priority\":0.3,\"reasoning\":\"\"}\n```",
	})

	res, err := a.Analyze(context.Background(), "go for a run")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Degraded {
		t.Fatalf("unexpected degraded result: %s", res.Reason)
	}
	if res.Task.Type != model.TaskTypeExercise {
		t.Errorf("type = %s, want exercise", res.Task.Type)
	}
}

func TestAnalyzeMalformedOutputDegrades(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "not json", text: "I think this is a work task."},
		{name: "empty", text: ""},
		{name: "truncated json", text: `{"task_type":"work",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAnalyzer(t, &mockGemini{text: tt.text})

			res, err := a.Analyze(context.Background(), "do something")
			if err != nil {
				t.Fatalf("malformed output must not error: %v", err)
			}
			if !res.Degraded {
				t.Fatal("expected degraded result")
			}

			task := res.Task
			if task.Type != model.TaskTypePersonal {
				t.Errorf("fallback type = %s, want personal", task.Type)
			}
			if task.EstimatedDuration != 30 {
				t.Errorf("fallback duration = %d, want 30", task.EstimatedDuration)
			}
			if task.MentalLoad != model.MentalLoadMedium {
				t.Errorf("fallback load = %s, want medium", task.MentalLoad)
			}
			if task.Priority != 0.5 {
				t.Errorf("fallback priority = %f, want 0.5", task.Priority)
			}
		})
	}
}

func TestAnalyzeClampsFields(t *testing.T) {
	a := newAnalyzer(t, &mockGemini{
		text: `{"task_type":"chore","estimated_duration_minutes":-5,"mental_load":"extreme","deadline":"","priority":3.5,"reasoning":""}`,
	})

	res, err := a.Analyze(context.Background(), "tidy up")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Degraded {
		t.Fatal("field clamping must not mark the result degraded")
	}

	task := res.Task
	if task.Type != model.TaskTypePersonal {
		t.Errorf("unknown type clamped to %s, want personal", task.Type)
	}
	if task.MentalLoad != model.MentalLoadMedium {
		t.Errorf("unknown load clamped to %s, want medium", task.MentalLoad)
	}
	if task.EstimatedDuration != 30 {
		t.Errorf("duration = %d, want default 30", task.EstimatedDuration)
	}
	if task.Priority != 1 {
		t.Errorf("priority = %f, want clamped to 1", task.Priority)
	}
}

func TestAnalyzeTransportError(t *testing.T) {
	a := newAnalyzer(t, &mockGemini{err: errors.New("connection refused")})

	if _, err := a.Analyze(context.Background(), "anything"); err == nil {
		t.Fatal("transport failure must surface as an error")
	}
}

func TestAnalyzeEmptyDescription(t *testing.T) {
	a := newAnalyzer(t, &mockGemini{})

	if _, err := a.Analyze(context.Background(), "  "); !errors.Is(err, analyzer.ErrEmptyDescription) {
		t.Fatalf("got %v, want ErrEmptyDescription", err)
	}
}
