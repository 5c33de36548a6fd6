package routes

import (
	"timetable-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type CatalogRoutes struct {
	handler *handlers.CatalogHandler
}

func NewCatalogRoutes(handler *handlers.CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

func (r *CatalogRoutes) RegisterRoutes(router *gin.RouterGroup) {
	teachers := router.Group("/teachers")
	{
		teachers.POST("", r.handler.CreateTeacher)
		teachers.GET("", r.handler.ListTeachers)
		teachers.DELETE("/:id", r.handler.DeleteTeacher)
	}

	subjects := router.Group("/subjects")
	{
		subjects.POST("", r.handler.CreateSubject)
		subjects.GET("", r.handler.ListSubjects)
		subjects.DELETE("/:id", r.handler.DeleteSubject)
	}

	sections := router.Group("/sections")
	{
		sections.POST("", r.handler.CreateSection)
		sections.GET("", r.handler.ListSections)
		sections.DELETE("/:id", r.handler.DeleteSection)
	}

	rooms := router.Group("/rooms")
	{
		rooms.POST("", r.handler.CreateRoom)
		rooms.GET("", r.handler.ListRooms)
		rooms.DELETE("/:id", r.handler.DeleteRoom)
	}

	// Weekdays are seeded at initialization; read-only.
	router.GET("/weekdays", r.handler.ListWeekdays)
}
