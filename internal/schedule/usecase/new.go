package usecase

import (
	"time"

	"personal-task-scheduler/internal/analyzer"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/schedule/repository"
	"personal-task-scheduler/internal/scheduler"
	"personal-task-scheduler/internal/scheduler/sessionstore"
	pkgLog "personal-task-scheduler/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	analyzer analyzer.Analyzer
	repo     repository.ScheduleRepository
	sessions *sessionstore.Store
	grid     scheduler.GridOptions
	nowFn    func() time.Time
}

var _ schedule.UseCase = &implUseCase{}

// New creates a new schedule UseCase instance. nowFn anchors suggestions
// and the day window; pass nil for time.Now.
func New(
	l pkgLog.Logger,
	a analyzer.Analyzer,
	repo repository.ScheduleRepository,
	sessions *sessionstore.Store,
	grid scheduler.GridOptions,
	nowFn func() time.Time,
) *implUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &implUseCase{
		l:        l,
		analyzer: a,
		repo:     repo,
		sessions: sessions,
		grid:     grid,
		nowFn:    nowFn,
	}
}
