package scheduler_test

import (
	"testing"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/scheduler"
)

var day = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func mustSlot(t *testing.T, date time.Time, hour, minute, durationMinutes int) model.TimeSlot {
	t.Helper()
	slot, err := model.SlotAt(date, hour, minute, durationMinutes)
	if err != nil {
		t.Fatalf("SlotAt(%d:%02d +%dm): %v", hour, minute, durationMinutes, err)
	}
	return slot
}

func booked(t *testing.T, date time.Time, hour, minute, durationMinutes int) model.ScheduledTask {
	t.Helper()
	return model.ScheduledTask{
		ID:   "existing",
		Task: model.TaskData{Description: "existing booking"},
		Slot: mustSlot(t, date, hour, minute, durationMinutes),
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	a := mustSlot(t, day, 9, 0, 60)
	b := mustSlot(t, day, 9, 30, 60)
	c := mustSlot(t, day, 11, 0, 30)

	if a.Overlaps(b) != b.Overlaps(a) {
		t.Errorf("overlap is not symmetric for %s and %s", a, b)
	}
	if !a.Overlaps(b) {
		t.Errorf("%s should overlap %s", a, b)
	}
	if a.Overlaps(c) {
		t.Errorf("%s should not overlap %s", a, c)
	}
	if !a.Overlaps(a) {
		t.Errorf("a positive-duration slot must overlap itself")
	}
}

func TestOverlapsHalfOpenBoundary(t *testing.T) {
	a := mustSlot(t, day, 9, 0, 60)
	b := mustSlot(t, day, 10, 0, 60) // starts exactly where a ends

	if a.Overlaps(b) {
		t.Errorf("back-to-back slots must not overlap: %s vs %s", a, b)
	}
}

func TestHasConflictEmptyExisting(t *testing.T) {
	candidate := mustSlot(t, day, 9, 0, 60)

	if scheduler.HasConflict(candidate, nil) {
		t.Error("no existing bookings must never conflict")
	}
	if scheduler.HasConflict(candidate, []model.ScheduledTask{}) {
		t.Error("empty existing set must never conflict")
	}
}

func TestHasConflict(t *testing.T) {
	existing := []model.ScheduledTask{booked(t, day, 9, 0, 60)}

	tests := []struct {
		name      string
		candidate model.TimeSlot
		want      bool
	}{
		{name: "overlapping candidate", candidate: mustSlot(t, day, 9, 30, 60), want: true},
		{name: "contained candidate", candidate: mustSlot(t, day, 9, 15, 15), want: true},
		{name: "disjoint candidate", candidate: mustSlot(t, day, 11, 0, 60), want: false},
		{name: "same slot other day", candidate: mustSlot(t, day.AddDate(0, 0, 1), 9, 0, 60), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scheduler.HasConflict(tt.candidate, existing); got != tt.want {
				t.Errorf("HasConflict(%s) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestAvailableSlotsDefaults(t *testing.T) {
	grid := scheduler.AvailableSlots(day, 30, nil, scheduler.GridOptions{})

	if len(grid) == 0 {
		t.Fatal("empty grid")
	}

	first := grid[0].Slot
	if first.Start.Hour() != 6 {
		t.Errorf("grid starts %v, want 06:00", first.Start)
	}

	last := grid[len(grid)-1].Slot
	if last.End.After(day.Add(22 * time.Hour)) {
		t.Errorf("grid end %v exceeds 22:00 window", last.End)
	}

	// 06:00..21:30 starts at 30-minute steps for a 30-minute task.
	if want := 32; len(grid) != want {
		t.Errorf("grid size = %d, want %d", len(grid), want)
	}

	for _, sa := range grid {
		if sa.Occupied {
			t.Errorf("slot %s marked occupied with no bookings", sa.Slot)
		}
	}
}

func TestAvailableSlotsMarksOccupied(t *testing.T) {
	existing := []model.ScheduledTask{booked(t, day, 9, 0, 60)}

	grid := scheduler.AvailableSlots(day, 30, existing, scheduler.GridOptions{})

	for _, sa := range grid {
		wantOccupied := sa.Slot.Start.Before(day.Add(10*time.Hour)) && sa.Slot.End.After(day.Add(9*time.Hour))
		if sa.Occupied != wantOccupied {
			t.Errorf("slot %s occupied = %v, want %v", sa.Slot, sa.Occupied, wantOccupied)
		}
	}
}

func TestAvailableSlotsCustomWindow(t *testing.T) {
	grid := scheduler.AvailableSlots(day, 60, nil, scheduler.GridOptions{
		DayStartHour: 8,
		DayEndHour:   12,
		StepMinutes:  60,
	})

	if want := 4; len(grid) != want { // 08,09,10,11
		t.Fatalf("grid size = %d, want %d", len(grid), want)
	}
	if grid[0].Slot.Start.Hour() != 8 {
		t.Errorf("grid starts %v, want 08:00", grid[0].Slot.Start)
	}
	if grid[3].Slot.End.Hour() != 12 {
		t.Errorf("last slot ends %v, want 12:00", grid[3].Slot.End)
	}
}
