package scheduler_test

import (
	"errors"
	"testing"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/scheduler"
)

func newTestSession(t *testing.T, now time.Time) *scheduler.Session {
	t.Helper()
	task := model.TaskData{
		Description:       "write report",
		Type:              model.TaskTypeWork,
		EstimatedDuration: 60,
		MentalLoad:        model.MentalLoadHigh,
		Priority:          0.8,
	}
	return scheduler.NewSession(task, scheduler.Suggest(task, now), now)
}

func TestSessionHappyPath(t *testing.T) {
	// End-to-end from the suggestion: high load at 08:00 on Jan 1 suggests
	// 09:00-10:00 today, and an empty calendar lets it through.
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newTestSession(t, now)

	suggested := s.Suggested()
	if suggested.Start.Hour() != 9 || suggested.End.Hour() != 10 {
		t.Fatalf("suggested = %s, want 09:00-10:00", suggested)
	}
	if !suggested.Date.Equal(model.DateOf(now)) {
		t.Fatalf("suggested date = %v, want today", suggested.Date)
	}

	if err := s.SelectDay(suggested.Date, nil); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}
	if s.State() != scheduler.StateChoosingTime {
		t.Fatalf("state = %s, want choosing_time", s.State())
	}

	if err := s.SelectTime(suggested); err != nil {
		t.Fatalf("SelectTime: %v", err)
	}

	slot, err := s.Confirm()
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if s.State() != scheduler.StateResolved {
		t.Fatalf("state = %s, want resolved", s.State())
	}
	if !slot.Start.Equal(suggested.Start) || !slot.End.Equal(suggested.End) {
		t.Fatalf("committed slot = %s, want %s", slot, suggested)
	}
}

func TestSessionConflictKeepsState(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newTestSession(t, now)

	existing := []model.ScheduledTask{booked(t, model.DateOf(now), 9, 0, 60)}
	if err := s.SelectDay(model.DateOf(now), existing); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}

	candidate := mustSlot(t, model.DateOf(now), 9, 30, 60)
	if err := s.SelectTime(candidate); !errors.Is(err, scheduler.ErrSlotTaken) {
		t.Fatalf("SelectTime = %v, want ErrSlotTaken", err)
	}

	if s.State() != scheduler.StateChoosingTime {
		t.Errorf("state = %s, conflict must not change state", s.State())
	}
	if _, ok := s.Pending(); ok {
		t.Error("conflicting selection must not be held as pending")
	}

	// Confirm is unreachable until a non-conflicting selection lands.
	if _, err := s.Confirm(); !errors.Is(err, scheduler.ErrInvalidTransition) {
		t.Fatalf("Confirm without selection = %v, want ErrInvalidTransition", err)
	}

	free := mustSlot(t, model.DateOf(now), 11, 0, 60)
	if err := s.SelectTime(free); err != nil {
		t.Fatalf("SelectTime on free slot: %v", err)
	}
	if _, err := s.Confirm(); err != nil {
		t.Fatalf("Confirm after free selection: %v", err)
	}
}

func TestSessionDayOptions(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newTestSession(t, now)

	opts := s.DayOptions()
	if len(opts) != scheduler.DayWindow {
		t.Fatalf("day options = %d, want %d", len(opts), scheduler.DayWindow)
	}
	if !opts[0].Date.Equal(model.DateOf(now)) {
		t.Errorf("first option = %v, want today", opts[0].Date)
	}
	if !opts[0].Suggested {
		t.Error("today must be marked suggested")
	}
	for i := 1; i < len(opts); i++ {
		if opts[i].Suggested {
			t.Errorf("option %d wrongly marked suggested", i)
		}
	}
}

func TestSessionSuggestionDroppedOnOtherDay(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newTestSession(t, now)

	otherDay := model.DateOf(now).AddDate(0, 0, 2)
	if err := s.SelectDay(otherDay, nil); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}

	if _, ok := s.SuggestedSlot(); ok {
		t.Error("suggestion highlight must drop on a non-suggested day")
	}

	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if err := s.SelectDay(model.DateOf(now), nil); err != nil {
		t.Fatalf("SelectDay (suggested day): %v", err)
	}
	if _, ok := s.SuggestedSlot(); !ok {
		t.Error("suggestion highlight must survive on the suggested day")
	}
}

func TestSessionBackClearsSelection(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newTestSession(t, now)

	today := model.DateOf(now)
	if err := s.SelectDay(today, nil); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}
	if err := s.SelectTime(mustSlot(t, today, 11, 0, 60)); err != nil {
		t.Fatalf("SelectTime: %v", err)
	}

	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.State() != scheduler.StateChoosingDay {
		t.Errorf("state = %s, want choosing_day", s.State())
	}
	if _, ok := s.Pending(); ok {
		t.Error("Back must clear the pending selection")
	}
	if !s.ScopedDate().IsZero() {
		t.Error("Back must clear the day scope")
	}
}

func TestSessionInvalidTransitions(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	t.Run("select time in choosing_day", func(t *testing.T) {
		s := newTestSession(t, now)
		err := s.SelectTime(mustSlot(t, today, 9, 0, 60))
		if !errors.Is(err, scheduler.ErrInvalidTransition) {
			t.Errorf("got %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("select day twice", func(t *testing.T) {
		s := newTestSession(t, now)
		if err := s.SelectDay(today, nil); err != nil {
			t.Fatalf("SelectDay: %v", err)
		}
		if err := s.SelectDay(today, nil); !errors.Is(err, scheduler.ErrInvalidTransition) {
			t.Errorf("got %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("slot off the scoped day", func(t *testing.T) {
		s := newTestSession(t, now)
		if err := s.SelectDay(today, nil); err != nil {
			t.Fatalf("SelectDay: %v", err)
		}
		err := s.SelectTime(mustSlot(t, today.AddDate(0, 0, 1), 9, 0, 60))
		if !errors.Is(err, scheduler.ErrInvalidTransition) {
			t.Errorf("got %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("terminal states reject everything", func(t *testing.T) {
		s := newTestSession(t, now)
		if err := s.Cancel(); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if s.State() != scheduler.StateCancelled {
			t.Fatalf("state = %s, want cancelled", s.State())
		}
		if err := s.Cancel(); !errors.Is(err, scheduler.ErrInvalidTransition) {
			t.Errorf("second Cancel = %v, want ErrInvalidTransition", err)
		}
		if err := s.SelectDay(today, nil); !errors.Is(err, scheduler.ErrInvalidTransition) {
			t.Errorf("SelectDay after Cancel = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestSessionCancelFromChoosingTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newTestSession(t, now)

	if err := s.SelectDay(model.DateOf(now), nil); err != nil {
		t.Fatalf("SelectDay: %v", err)
	}
	if err := s.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if s.State() != scheduler.StateCancelled {
		t.Errorf("state = %s, want cancelled", s.State())
	}
}
