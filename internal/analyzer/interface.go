package analyzer

import (
	"context"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/pkg/datemath"
	"personal-task-scheduler/pkg/gemini"
	pkgLog "personal-task-scheduler/pkg/log"
)

// Analyzer extracts structured task attributes from a free-text
// description. Network failures surface as errors (retryable); malformed
// model output degrades to a default TaskData instead (see Result).
type Analyzer interface {
	Analyze(ctx context.Context, description string) (Result, error)
}

// Result is the tagged analysis outcome. Degraded marks a
// silently-recovered default: usable, but not what the model said.
type Result struct {
	Task     model.TaskData
	Degraded bool
	Reason   string
}

// New creates a Gemini-backed Analyzer. nowFn anchors the time context
// given to the model; pass nil for time.Now.
func New(l pkgLog.Logger, llm gemini.IGemini, dates *datemath.Parser, nowFn func() time.Time) Analyzer {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &implAnalyzer{
		l:     l,
		llm:   llm,
		dates: dates,
		nowFn: nowFn,
	}
}
