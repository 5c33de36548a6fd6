package routes

import (
	"timetable-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ReportRoutes struct {
	handler *handlers.ReportHandler
}

func NewReportRoutes(handler *handlers.ReportHandler) *ReportRoutes {
	return &ReportRoutes{handler: handler}
}

func (r *ReportRoutes) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/roster", r.handler.Roster)
		reports.GET("/sections/:id", r.handler.SectionSchedule)
	}
}
