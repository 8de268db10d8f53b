package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-task-scheduler/internal/schedule"
	"personal-task-scheduler/internal/scheduler"
	"personal-task-scheduler/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
// Unknown errors surface as 500 without leaking internals.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduler.ErrSlotTaken):
		response.Conflict(c, err)
	case errors.Is(err, schedule.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, schedule.ErrEmptyInput),
		errors.Is(err, schedule.ErrNoActiveSession),
		errors.Is(err, scheduler.ErrInvalidTransition):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
