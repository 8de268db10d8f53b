package scheduler

import (
	"time"

	"personal-task-scheduler/internal/model"
)

// Canonical start hours per mental load. High-focus work is front-loaded
// into the morning; low-focus work lands after the usual workday peak.
const (
	HourHighLoad   = 9
	HourMediumLoad = 14
	HourLowLoad    = 17
	HourDefault    = 10

	defaultDurationMinutes = 30
)

// Suggest proposes a slot for the task: the mental-load category picks the
// start hour, the estimated duration sets the end. If the slot has already
// passed at `now`, the suggestion rolls to the same hour tomorrow.
// Pure function of its inputs; callers supply the clock.
func Suggest(task model.TaskData, now time.Time) model.TimeSlot {
	hour := HourDefault
	switch task.MentalLoad {
	case model.MentalLoadHigh:
		hour = HourHighLoad
	case model.MentalLoadMedium:
		hour = HourMediumLoad
	case model.MentalLoadLow:
		hour = HourLowLoad
	}

	duration := task.EstimatedDuration
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	day := model.DateOf(now)
	start := day.Add(time.Duration(hour) * time.Hour)
	end := start.Add(time.Duration(duration) * time.Minute)

	if now.After(end) {
		day = day.AddDate(0, 0, 1)
		start = day.Add(time.Duration(hour) * time.Hour)
		end = start.Add(time.Duration(duration) * time.Minute)
	}

	// Slots never cross midnight; very long tasks are clamped to the day.
	if endOfDay := day.Add(24*time.Hour - time.Minute); end.After(endOfDay) {
		end = endOfDay
	}

	return model.TimeSlot{Date: day, Start: start, End: end}
}
