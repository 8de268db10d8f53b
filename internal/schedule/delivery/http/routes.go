package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule", mw.RateLimit())
	{
		sched.POST("", h.Schedule)
		sched.POST("/day", h.SelectDay)
		sched.POST("/time", h.SelectTime)
		sched.POST("/back", h.Back)
		sched.POST("/confirm", h.Confirm)
		sched.POST("/cancel", h.Cancel)

		sched.GET("/slots", h.Slots)
		sched.GET("/tasks", h.List)
		sched.POST("/tasks/:id/complete", h.Complete)
		sched.PATCH("/tasks/:id", h.Update)
		sched.DELETE("/tasks/:id", h.Remove)
	}
}
