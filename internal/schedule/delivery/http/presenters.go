package http

import (
	"errors"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/pkg/response"
)

var errInvalidDate = errors.New("date must be formatted as " + response.DateFormat)

// --- Request DTOs ---

type scheduleReq struct {
	Description string `json:"description" binding:"required,min=1,max=2000"`
}

func (r scheduleReq) toInput() schedule.ScheduleInput {
	return schedule.ScheduleInput{Description: r.Description}
}

type selectDayReq struct {
	Date string `json:"date" binding:"required"`
}

func (r selectDayReq) parse() (time.Time, error) {
	date, err := time.Parse(response.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}

type selectTimeReq struct {
	Start           string `json:"start" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

func (r selectTimeReq) parse() (model.TimeSlot, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return model.TimeSlot{}, errors.New("start must be formatted as RFC3339")
	}
	return model.SlotAt(model.DateOf(start), start.Hour(), start.Minute(), r.DurationMinutes)
}

type slotsReq struct {
	Date            string `form:"date" binding:"required"`
	DurationMinutes int    `form:"duration_minutes"`
}

func (r slotsReq) toInput() (schedule.SlotsInput, error) {
	date, err := time.Parse(response.DateFormat, r.Date)
	if err != nil {
		return schedule.SlotsInput{}, errInvalidDate
	}
	return schedule.SlotsInput{Date: date, DurationMinutes: r.DurationMinutes}, nil
}

type listReq struct {
	Date             string `form:"date"`
	From             string `form:"from"`
	To               string `form:"to"`
	IncludeCompleted bool   `form:"include_completed"`
}

func (r listReq) toInput() (schedule.ListInput, error) {
	input := schedule.ListInput{IncludeCompleted: r.IncludeCompleted}

	parse := func(value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		t, err := time.Parse(response.DateFormat, value)
		if err != nil {
			return nil, errInvalidDate
		}
		return &t, nil
	}

	var err error
	if input.Date, err = parse(r.Date); err != nil {
		return input, err
	}
	if input.From, err = parse(r.From); err != nil {
		return input, err
	}
	if input.To, err = parse(r.To); err != nil {
		return input, err
	}
	return input, nil
}

type updateReq struct {
	ID          string         `json:"-"` // populated from URI param
	Slot        *selectTimeReq `json:"slot" binding:"omitempty"`
	Description *string        `json:"description" binding:"omitempty,min=1,max=2000"`
	Priority    *float64       `json:"priority" binding:"omitempty,min=0,max=1"`
}

func (r updateReq) toInput() (schedule.UpdateInput, error) {
	input := schedule.UpdateInput{
		ID:          r.ID,
		Description: r.Description,
		Priority:    r.Priority,
	}
	if r.Slot != nil {
		slot, err := r.Slot.parse()
		if err != nil {
			return input, err
		}
		input.Slot = &slot
	}
	return input, nil
}

// --- Response DTOs ---

type slotResp struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func newSlotResp(slot model.TimeSlot) slotResp {
	return slotResp{
		Date:  slot.Date.Format(response.DateFormat),
		Start: slot.Start.Format(time.RFC3339),
		End:   slot.End.Format(time.RFC3339),
	}
}

type dayOptionResp struct {
	Date      string `json:"date"`
	Suggested bool   `json:"suggested"`
}

type scheduleResp struct {
	Task           model.TaskData  `json:"task"`
	Suggested      slotResp        `json:"suggested"`
	DayOptions     []dayOptionResp `json:"day_options"`
	State          string          `json:"state"`
	Degraded       bool            `json:"degraded,omitempty"`
	DegradedReason string          `json:"degraded_reason,omitempty"`
}

func (h *handler) newScheduleResp(out schedule.ScheduleOutput) scheduleResp {
	days := make([]dayOptionResp, len(out.DayOptions))
	for i, d := range out.DayOptions {
		days[i] = dayOptionResp{
			Date:      d.Date.Format(response.DateFormat),
			Suggested: d.Suggested,
		}
	}
	return scheduleResp{
		Task:           out.Task,
		Suggested:      newSlotResp(out.Suggested),
		DayOptions:     days,
		State:          string(out.State),
		Degraded:       out.Degraded,
		DegradedReason: out.DegradedReason,
	}
}

type slotAvailabilityResp struct {
	Slot     slotResp `json:"slot"`
	Occupied bool     `json:"occupied"`
}

type slotsResp struct {
	Date      string                 `json:"date"`
	Slots     []slotAvailabilityResp `json:"slots"`
	Suggested *slotResp              `json:"suggested,omitempty"`
	State     string                 `json:"state,omitempty"`
}

func (h *handler) newSlotsResp(out schedule.SlotsOutput) slotsResp {
	slots := make([]slotAvailabilityResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = slotAvailabilityResp{
			Slot:     newSlotResp(s.Slot),
			Occupied: s.Occupied,
		}
	}
	resp := slotsResp{
		Date:  out.Date.Format(response.DateFormat),
		Slots: slots,
		State: string(out.State),
	}
	if out.Suggested != nil {
		suggested := newSlotResp(*out.Suggested)
		resp.Suggested = &suggested
	}
	return resp
}

type selectionResp struct {
	Pending slotResp `json:"pending"`
	State   string   `json:"state"`
}

func (h *handler) newSelectionResp(out schedule.SelectionOutput) selectionResp {
	return selectionResp{
		Pending: newSlotResp(out.Pending),
		State:   string(out.State),
	}
}

type taskResp struct {
	ID        string         `json:"id"`
	Task      model.TaskData `json:"task"`
	Slot      slotResp       `json:"slot"`
	Completed bool           `json:"completed"`
	CreatedAt time.Time      `json:"created_at"`
}

func newTaskResp(task model.ScheduledTask) taskResp {
	return taskResp{
		ID:        task.ID,
		Task:      task.Task,
		Slot:      newSlotResp(task.Slot),
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out schedule.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}
