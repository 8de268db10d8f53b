package scheduler

import (
	"time"

	"personal-task-scheduler/internal/model"
)

// Default day window for the availability grid.
const (
	DefaultDayStartHour = 6
	DefaultDayEndHour   = 22
	DefaultStepMinutes  = 30
)

// HasConflict reports whether the candidate slot overlaps any booking on
// the same date. O(n) over the existing set; daily task counts are small
// enough that no index is needed.
func HasConflict(candidate model.TimeSlot, existing []model.ScheduledTask) bool {
	for _, t := range existing {
		if !t.Slot.SameDay(candidate) {
			continue
		}
		if candidate.Overlaps(t.Slot) {
			return true
		}
	}
	return false
}

// GridOptions tunes the availability grid. Zero values fall back to the
// 06:00-22:00 window at 30-minute steps.
type GridOptions struct {
	DayStartHour int
	DayEndHour   int
	StepMinutes  int
}

func (o GridOptions) withDefaults() GridOptions {
	if o.DayStartHour == 0 {
		o.DayStartHour = DefaultDayStartHour
	}
	if o.DayEndHour == 0 {
		o.DayEndHour = DefaultDayEndHour
	}
	if o.StepMinutes <= 0 {
		o.StepMinutes = DefaultStepMinutes
	}
	return o
}

// SlotAvailability is one candidate slot of the grid, annotated with
// whether it collides with an existing booking.
type SlotAvailability struct {
	Slot     model.TimeSlot
	Occupied bool
}

// AvailableSlots produces candidate slots of durationMinutes at fixed step
// granularity across the day window, each checked against the existing
// bookings. Recomputed from inputs on every call; holds no state.
func AvailableSlots(date time.Time, durationMinutes int, existing []model.ScheduledTask, opts GridOptions) []SlotAvailability {
	o := opts.withDefaults()

	if durationMinutes <= 0 {
		durationMinutes = defaultDurationMinutes
	}

	day := model.DateOf(date)
	windowStart := day.Add(time.Duration(o.DayStartHour) * time.Hour)
	windowEnd := day.Add(time.Duration(o.DayEndHour) * time.Hour)
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(o.StepMinutes) * time.Minute

	var grid []SlotAvailability
	for start := windowStart; !start.Add(duration).After(windowEnd); start = start.Add(step) {
		slot := model.TimeSlot{Date: day, Start: start, End: start.Add(duration)}
		grid = append(grid, SlotAvailability{
			Slot:     slot,
			Occupied: HasConflict(slot, existing),
		})
	}

	return grid
}
