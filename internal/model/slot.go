package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSlot is returned when a slot has no positive duration or
// crosses midnight.
var ErrInvalidSlot = errors.New("invalid time slot")

// TimeSlot is a date plus a start/end time-of-day pair representing a
// scheduling commitment. Slots are value objects: build a new one instead
// of mutating fields.
type TimeSlot struct {
	Date  time.Time `json:"date"`  // midnight of the slot's calendar day
	Start time.Time `json:"start"` // start instant on Date
	End   time.Time `json:"end"`   // end instant on Date, after Start
}

// NewTimeSlot builds a validated slot from start/end instants.
// Start must precede End and both must fall on the same calendar day.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidSlot, start.Format("15:04"), end.Format("15:04"))
	}
	if DateOf(start) != DateOf(end) {
		return TimeSlot{}, fmt.Errorf("%w: slot crosses midnight", ErrInvalidSlot)
	}
	return TimeSlot{Date: DateOf(start), Start: start, End: end}, nil
}

// SlotAt builds a slot on the given date starting at hour:minute and
// lasting durationMinutes. Convenience for grid construction and tests.
func SlotAt(date time.Time, hour, minute, durationMinutes int) (TimeSlot, error) {
	day := DateOf(date)
	start := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return NewTimeSlot(start, start.Add(time.Duration(durationMinutes)*time.Minute))
}

// Overlaps reports whether two half-open intervals [Start, End) intersect.
// Both slots must lie on the same date; callers scope candidates to one
// day before asking (see scheduler.HasConflict).
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && s.End.After(other.Start)
}

// SameDay reports whether both slots share a calendar date.
func (s TimeSlot) SameDay(other TimeSlot) bool {
	return s.Date.Equal(other.Date)
}

// Duration returns the slot length.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsZero reports whether the slot is unset.
func (s TimeSlot) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// String renders the slot as "2006-01-02 15:04-15:04".
func (s TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Date.Format("2006-01-02"), s.Start.Format("15:04"), s.End.Format("15:04"))
}

// DateOf truncates an instant to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
