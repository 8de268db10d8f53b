package telegram

import (
	"fmt"
	"strings"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/scheduler"
)

const (
	dayFormat  = "2006-01-02"
	timeFormat = "15:04"

	suggestedPrefix = "⭐ "
	timeKeyboardCap = 16
)

// parseDayReply recognizes a day-keyboard reply, with or without the
// suggested marker.
func parseDayReply(text string) (time.Time, bool) {
	text = strings.TrimPrefix(strings.TrimSpace(text), suggestedPrefix)
	date, err := time.Parse(dayFormat, text)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// parseTimeReply recognizes a time-keyboard reply ("09:30").
func parseTimeReply(text string) (hour, minute int, ok bool) {
	text = strings.TrimPrefix(strings.TrimSpace(text), suggestedPrefix)
	t, err := time.Parse(timeFormat, text)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

func formatSlot(slot model.TimeSlot) string {
	return fmt.Sprintf("%s %s-%s",
		slot.Date.Format(dayFormat),
		slot.Start.Format(timeFormat),
		slot.End.Format(timeFormat),
	)
}

func formatAnalysis(out schedule.ScheduleOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 %s\n", out.Task.Description)
	fmt.Fprintf(&sb, "Type: %s | Load: %s | %d min\n", out.Task.Type, out.Task.MentalLoad, out.Task.EstimatedDuration)
	if out.Task.Deadline != nil {
		fmt.Fprintf(&sb, "Deadline: %s\n", out.Task.Deadline.Format(dayFormat))
	}
	if out.Degraded {
		sb.WriteString("⚠️ I could not fully understand the task, using defaults.\n")
	}
	fmt.Fprintf(&sb, "\n💡 Suggested: %s\n\nPick a day:", formatSlot(out.Suggested))
	return sb.String()
}

func formatDayGrid(out schedule.SlotsOutput) string {
	msg := fmt.Sprintf("Free slots on %s", out.Date.Format(dayFormat))
	if out.Suggested != nil {
		msg += fmt.Sprintf(" (suggested: %s)", out.Suggested.Start.Format(timeFormat))
	}
	return msg + ". Pick a time:"
}

func formatTaskList(tasks []model.ScheduledTask) string {
	var sb strings.Builder
	sb.WriteString("*Today's schedule:*\n\n")
	for i, t := range tasks {
		fmt.Fprintf(&sb, "%d. %s-%s  %s\n",
			i+1,
			t.Slot.Start.Format(timeFormat),
			t.Slot.End.Format(timeFormat),
			t.Task.Description,
		)
	}
	return sb.String()
}

// dayKeyboard lays the day window out two buttons per row, marking the
// suggested date.
func dayKeyboard(options []scheduler.DayOption) [][]string {
	var rows [][]string
	var row []string
	for _, opt := range options {
		label := opt.Date.Format(dayFormat)
		if opt.Suggested {
			label = suggestedPrefix + label
		}
		row = append(row, label)
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// timeKeyboard offers the free slots four per row, capped so the keyboard
// stays usable on a phone.
func timeKeyboard(slots []scheduler.SlotAvailability) [][]string {
	var rows [][]string
	var row []string
	count := 0
	for _, s := range slots {
		if s.Occupied {
			continue
		}
		row = append(row, s.Slot.Start.Format(timeFormat))
		count++
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
		if count == timeKeyboardCap {
			break
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}
