package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-scheduler/internal/schedule"
	pkgLog "personal-task-scheduler/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	SelectDay(c *gin.Context)
	SelectTime(c *gin.Context)
	Back(c *gin.Context)
	Confirm(c *gin.Context)
	Cancel(c *gin.Context)
	Slots(c *gin.Context)
	List(c *gin.Context)
	Complete(c *gin.Context)
	Remove(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l pkgLog.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
