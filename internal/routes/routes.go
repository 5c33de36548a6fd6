package routes

import (
	"net/http"

	"timetable-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, catalogHandler *handlers.CatalogHandler, scheduleHandler *handlers.ScheduleHandler, reportHandler *handlers.ReportHandler) {
	api := router.Group("/api/v1")

	catalogRoutes := NewCatalogRoutes(catalogHandler)
	catalogRoutes.RegisterRoutes(api)

	scheduleRoutes := NewScheduleRoutes(scheduleHandler)
	scheduleRoutes.RegisterRoutes(api)

	reportRoutes := NewReportRoutes(reportHandler)
	reportRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
