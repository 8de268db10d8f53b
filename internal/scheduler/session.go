package scheduler

import (
	"fmt"
	"time"

	"personal-task-scheduler/internal/model"
)

// State is the scheduling session state.
type State string

const (
	StateChoosingDay  State = "choosing_day"
	StateChoosingTime State = "choosing_time"
	StateResolved     State = "resolved"
	StateCancelled    State = "cancelled"
)

// DayWindow is how many calendar days (starting today) a session offers.
const DayWindow = 7

// DayOption is one selectable day, with the originally suggested date
// marked.
type DayOption struct {
	Date      time.Time `json:"date"`
	Suggested bool      `json:"suggested"`
}

// Session is the short-lived interactive state machine that books one
// task: ChoosingDay → ChoosingTime → Resolved | Cancelled. It performs no
// I/O; callers feed it the scoped existing bookings on day selection.
//
// A Session is owned by a single goroutine. Wrap access in external
// synchronization if the host environment is concurrent.
type Session struct {
	task      model.TaskData
	suggested model.TimeSlot
	today     time.Time

	state          State
	scopedDate     time.Time
	scopedExisting []model.ScheduledTask
	pending        model.TimeSlot
}

// NewSession opens a session in ChoosingDay, pre-seeded with the suggested
// slot. `now` anchors the 7-day selection window.
func NewSession(task model.TaskData, suggested model.TimeSlot, now time.Time) *Session {
	return &Session{
		task:      task,
		suggested: suggested,
		today:     model.DateOf(now),
		state:     StateChoosingDay,
	}
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Task returns the task being scheduled.
func (s *Session) Task() model.TaskData { return s.task }

// Suggested returns the pre-seeded suggestion.
func (s *Session) Suggested() model.TimeSlot { return s.suggested }

// ScopedDate returns the day selected in ChoosingTime, or zero.
func (s *Session) ScopedDate() time.Time { return s.scopedDate }

// ScopedExisting returns the bookings the session checks conflicts against.
func (s *Session) ScopedExisting() []model.ScheduledTask { return s.scopedExisting }

// Pending returns the held slot selection, if any.
func (s *Session) Pending() (model.TimeSlot, bool) {
	return s.pending, !s.pending.IsZero()
}

// DayOptions lists the next DayWindow days starting today, marking the
// suggested date.
func (s *Session) DayOptions() []DayOption {
	opts := make([]DayOption, 0, DayWindow)
	for i := 0; i < DayWindow; i++ {
		date := s.today.AddDate(0, 0, i)
		opts = append(opts, DayOption{
			Date:      date,
			Suggested: date.Equal(s.suggested.Date),
		})
	}
	return opts
}

// SuggestedSlot returns the suggestion for the scoped day. The highlight
// only survives on the originally suggested date; picking any other day
// drops it.
func (s *Session) SuggestedSlot() (model.TimeSlot, bool) {
	if s.state != StateChoosingTime || !s.scopedDate.Equal(s.suggested.Date) {
		return model.TimeSlot{}, false
	}
	return s.suggested, true
}

// SelectDay moves ChoosingDay → ChoosingTime, scoping conflict checks to
// the given date. The caller supplies the bookings already on that day.
func (s *Session) SelectDay(date time.Time, existing []model.ScheduledTask) error {
	if s.state != StateChoosingDay {
		return fmt.Errorf("%w: select day in state %q", ErrInvalidTransition, s.state)
	}
	s.scopedDate = model.DateOf(date)
	s.scopedExisting = existing
	s.state = StateChoosingTime
	return nil
}

// SelectTime records the slot as the pending selection. A conflicting slot
// returns ErrSlotTaken and changes nothing; the session stays in
// ChoosingTime either way until Confirm or Back.
func (s *Session) SelectTime(slot model.TimeSlot) error {
	if s.state != StateChoosingTime {
		return fmt.Errorf("%w: select time in state %q", ErrInvalidTransition, s.state)
	}
	if !slot.Date.Equal(s.scopedDate) {
		return fmt.Errorf("%w: slot %s is not on the selected day %s", ErrInvalidTransition, slot, s.scopedDate.Format("2006-01-02"))
	}
	if HasConflict(slot, s.scopedExisting) {
		return ErrSlotTaken
	}
	s.pending = slot
	return nil
}

// Back returns ChoosingTime → ChoosingDay, clearing the pending selection
// and the day scope.
func (s *Session) Back() error {
	if s.state != StateChoosingTime {
		return fmt.Errorf("%w: back in state %q", ErrInvalidTransition, s.state)
	}
	s.scopedDate = time.Time{}
	s.scopedExisting = nil
	s.pending = model.TimeSlot{}
	s.state = StateChoosingDay
	return nil
}

// Confirm commits the pending selection and moves to Resolved. This is the
// only path that yields a slot to persist.
func (s *Session) Confirm() (model.TimeSlot, error) {
	if s.state != StateChoosingTime {
		return model.TimeSlot{}, fmt.Errorf("%w: confirm in state %q", ErrInvalidTransition, s.state)
	}
	if s.pending.IsZero() {
		return model.TimeSlot{}, fmt.Errorf("%w: confirm without a pending selection", ErrInvalidTransition)
	}
	s.state = StateResolved
	return s.pending, nil
}

// Cancel aborts the session from any non-terminal state. Nothing is
// persisted.
func (s *Session) Cancel() error {
	if s.state == StateResolved || s.state == StateCancelled {
		return fmt.Errorf("%w: cancel in terminal state %q", ErrInvalidTransition, s.state)
	}
	s.state = StateCancelled
	return nil
}
