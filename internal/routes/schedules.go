package routes

import (
	"timetable-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ScheduleRoutes struct {
	handler *handlers.ScheduleHandler
}

func NewScheduleRoutes(handler *handlers.ScheduleHandler) *ScheduleRoutes {
	return &ScheduleRoutes{handler: handler}
}

func (r *ScheduleRoutes) RegisterRoutes(router *gin.RouterGroup) {
	assignments := router.Group("/assignments")
	{
		assignments.POST("", r.handler.AddAssignment)
		assignments.GET("", r.handler.ListAssignments)
		assignments.DELETE("/:id", r.handler.RemoveAssignment)
	}
}
