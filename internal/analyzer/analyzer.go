package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/pkg/datemath"
	"personal-task-scheduler/pkg/gemini"
	pkgLog "personal-task-scheduler/pkg/log"
)

type implAnalyzer struct {
	l     pkgLog.Logger
	llm   gemini.IGemini
	dates *datemath.Parser
	nowFn func() time.Time
}

// parsedAttributes is the JSON shape the model is instructed to return.
type parsedAttributes struct {
	TaskType                 string  `json:"task_type"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
	MentalLoad               string  `json:"mental_load"`
	Deadline                 string  `json:"deadline"`
	Priority                 float64 `json:"priority"`
	Reasoning                string  `json:"reasoning"`
}

// Analyze extracts task attributes from the description. Transport errors
// return an error; unparseable model output returns the degraded default
// TaskData with Degraded set.
func (a *implAnalyzer) Analyze(ctx context.Context, description string) (Result, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Result{}, ErrEmptyDescription
	}

	now := a.nowFn()
	prompt := fmt.Sprintf("%s\n\n%s", buildTimeContext(now, a.dates.Location()), description)

	resp, err := a.llm.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: AnalysisSystemPrompt,
		Messages:          []gemini.Message{{Role: "user", Text: prompt}},
		Temperature:       AnalysisTemperature,
	})
	if err != nil {
		return Result{}, fmt.Errorf("analyze %q: %w", truncate(description, 40), err)
	}

	attrs, parseErr := parseAttributes(resp.Text)
	if parseErr != nil {
		a.l.Warnf(ctx, "analyzer: malformed model output, using defaults: %v", parseErr)
		return Result{
			Task:     defaultTaskData(description),
			Degraded: true,
			Reason:   parseErr.Error(),
		}, nil
	}

	return Result{Task: a.toTaskData(ctx, description, attrs, now)}, nil
}

// parseAttributes unmarshals the model output, tolerating a markdown code
// fence around the JSON.
func parseAttributes(text string) (parsedAttributes, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	if text == "" {
		return parsedAttributes{}, fmt.Errorf("empty model output")
	}

	var attrs parsedAttributes
	if err := json.Unmarshal([]byte(text), &attrs); err != nil {
		return parsedAttributes{}, fmt.Errorf("decode model output: %w", err)
	}
	return attrs, nil
}

// toTaskData normalizes the parsed attributes: unknown enum values and
// out-of-range numbers are clamped to sane defaults rather than rejected.
func (a *implAnalyzer) toTaskData(ctx context.Context, description string, attrs parsedAttributes, now time.Time) model.TaskData {
	task := model.TaskData{
		Description:       description,
		Type:              model.TaskType(attrs.TaskType),
		EstimatedDuration: attrs.EstimatedDurationMinutes,
		MentalLoad:        model.MentalLoad(attrs.MentalLoad),
		Priority:          attrs.Priority,
		Reasoning:         attrs.Reasoning,
	}

	if !task.Type.Valid() {
		task.Type = model.TaskTypePersonal
	}
	if !task.MentalLoad.Valid() {
		task.MentalLoad = model.MentalLoadMedium
	}
	if task.EstimatedDuration <= 0 {
		task.EstimatedDuration = DefaultDurationMinutes
	}
	if task.Priority < 0 {
		task.Priority = 0
	}
	if task.Priority > 1 {
		task.Priority = 1
	}

	if attrs.Deadline != "" {
		deadline, err := a.dates.ParseDeadline(attrs.Deadline, now)
		if err != nil {
			a.l.Warnf(ctx, "analyzer: unresolvable deadline %q: %v", attrs.Deadline, err)
		} else {
			task.Deadline = &deadline
		}
	}

	return task
}

// defaultTaskData is the silently-recovered fallback for malformed model
// output.
func defaultTaskData(description string) model.TaskData {
	return model.TaskData{
		Description:       description,
		Type:              model.TaskTypePersonal,
		EstimatedDuration: DefaultDurationMinutes,
		MentalLoad:        model.MentalLoadMedium,
		Priority:          0.5,
		Reasoning:         "defaults applied: analysis output could not be parsed",
	}
}

func buildTimeContext(now time.Time, loc *time.Location) string {
	local := now.In(loc)
	return fmt.Sprintf(TimeContextTemplate,
		local.Format("2006-01-02"),
		local.Weekday().String(),
		local.AddDate(0, 0, 1).Format("2006-01-02"),
		loc.String(),
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
