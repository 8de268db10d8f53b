package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-scheduler/pkg/response"
)

// Schedule godoc
// @Summary     Start scheduling a task
// @Description Analyzes the free-text description, suggests a time slot, and opens an interactive scheduling session. Replaces any prior session for the same user.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      false "Caller identity (default: default)"
// @Param       body      body   scheduleReq true  "Task description"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// SelectDay godoc
// @Summary     Select a day
// @Description Scopes the active session to a day and returns that day's availability grid.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       false "Caller identity"
// @Param       body      body   selectDayReq true  "Day to scope to"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request / no active session"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/day [POST]
func (h *handler) SelectDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	date, err := req.parse()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SelectDay(ctx, h.scope(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.SelectDay: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSlotsResp(output))
}

// SelectTime godoc
// @Summary     Select a time slot
// @Description Holds a slot as the session's pending selection. A conflicting slot is rejected with 409 and the session keeps waiting for another pick.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        false "Caller identity"
// @Param       body      body   selectTimeReq true  "Slot to hold"
// @Success     200 {object} selectionResp
// @Failure     400 {object} response.Resp "Bad Request / no active session"
// @Failure     409 {object} response.Resp "Conflict - slot overlaps an existing booking"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/time [POST]
func (h *handler) SelectTime(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectTimeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	slot, err := req.parse()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SelectTime(ctx, h.scope(c), slot)
	if err != nil {
		h.l.Errorf(ctx, "uc.SelectTime: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSelectionResp(output))
}

// Back godoc
// @Summary     Back to day selection
// @Description Rewinds the active session to day selection, clearing any pending slot.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "No active session / invalid state"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/back [POST]
func (h *handler) Back(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Back(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Back: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// Confirm godoc
// @Summary     Confirm the pending slot
// @Description Commits the pending selection, books the task, and closes the session.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "No active session / nothing pending"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Confirm(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Cancel godoc
// @Summary     Cancel the session
// @Description Aborts the active session. Nothing is booked.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "No active session"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Cancel(ctx, h.scope(c)); err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Slots godoc
// @Summary     Day availability
// @Description Returns the availability grid for a day without touching any session.
// @Tags        Schedule
// @Produce     json
// @Param       date             query string true  "Day (YYYY-MM-DD)"
// @Param       duration_minutes query int    false "Candidate slot length (default: 30)"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Slots(ctx, h.scope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Slots: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSlotsResp(output))
}

// List godoc
// @Summary     List scheduled tasks
// @Description Returns scheduled tasks for a date or range, ordered by slot start ascending. date takes precedence over from/to.
// @Tags        Schedule
// @Produce     json
// @Param       date              query string false "Day (YYYY-MM-DD)"
// @Param       from              query string false "Range start (YYYY-MM-DD)"
// @Param       to                query string false "Range end (YYYY-MM-DD)"
// @Param       include_completed query bool   false "Include completed tasks"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a scheduled task done.
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Complete(ctx, h.scope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Remove godoc
// @Summary     Remove a task
// @Description Permanently deletes a scheduled task.
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/tasks/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Remove(ctx, h.scope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Update godoc
// @Summary     Update a task
// @Description Reschedules or edits a scheduled task. All fields are optional (partial update). A move onto an occupied slot is rejected with 409.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - new slot overlaps an existing booking"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, h.scope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}
