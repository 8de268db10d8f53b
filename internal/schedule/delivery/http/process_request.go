package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-scheduler/internal/model"
)

// headerUserID identifies the caller; single-user deployments may omit it.
const (
	headerUserID   = "X-User-ID"
	defaultUserID  = "default"
	headerUsername = "X-Username"
)

// scope extracts the caller identity from request headers.
func (h *handler) scope(c *gin.Context) model.Scope {
	userID := c.GetHeader(headerUserID)
	if userID == "" {
		userID = defaultUserID
	}
	return model.Scope{
		UserID:   userID,
		Username: c.GetHeader(headerUsername),
	}
}

// processScheduleReq binds and validates the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSelectDayReq binds the day selection request body.
func (h *handler) processSelectDayReq(c *gin.Context) (selectDayReq, error) {
	var req selectDayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSelectTimeReq binds the time selection request body.
func (h *handler) processSelectTimeReq(c *gin.Context) (selectTimeReq, error) {
	var req selectTimeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSlotsReq binds the availability query parameters.
func (h *handler) processSlotsReq(c *gin.Context) (slotsReq, error) {
	var req slotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}
