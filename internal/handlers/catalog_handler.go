package handlers

import (
	"net/http"

	"timetable-backend/internal/responses"
	"timetable-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) CreateTeacher(c *gin.Context) {
	var req services.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: first_name and last_name are required")
		return
	}

	teacher, err := h.catalogService.CreateTeacher(req)
	if err != nil {
		responses.FailError(c, err, "Failed to create teacher")
		return
	}

	responses.Success(c, http.StatusCreated, teacher, "Teacher created successfully")
}

func (h *CatalogHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.catalogService.ListTeachers()
	if err != nil {
		responses.FailError(c, err, "Failed to list teachers")
		return
	}

	responses.Success(c, http.StatusOK, teachers, "")
}

func (h *CatalogHandler) DeleteTeacher(c *gin.Context) {
	if err := h.catalogService.DeleteTeacher(c.Param("id")); err != nil {
		responses.FailError(c, err, "Failed to delete teacher")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Teacher deleted successfully")
}

func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req services.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: name is required")
		return
	}

	subject, err := h.catalogService.CreateSubject(req)
	if err != nil {
		responses.FailError(c, err, "Failed to create subject")
		return
	}

	responses.Success(c, http.StatusCreated, subject, "Subject created successfully")
}

func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogService.ListSubjects()
	if err != nil {
		responses.FailError(c, err, "Failed to list subjects")
		return
	}

	responses.Success(c, http.StatusOK, subjects, "")
}

func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	if err := h.catalogService.DeleteSubject(c.Param("id")); err != nil {
		responses.FailError(c, err, "Failed to delete subject")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Subject deleted successfully")
}

func (h *CatalogHandler) CreateSection(c *gin.Context) {
	var req services.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: name is required")
		return
	}

	section, err := h.catalogService.CreateSection(req)
	if err != nil {
		responses.FailError(c, err, "Failed to create section")
		return
	}

	responses.Success(c, http.StatusCreated, section, "Section created successfully")
}

func (h *CatalogHandler) ListSections(c *gin.Context) {
	sections, err := h.catalogService.ListSections()
	if err != nil {
		responses.FailError(c, err, "Failed to list sections")
		return
	}

	responses.Success(c, http.StatusOK, sections, "")
}

func (h *CatalogHandler) DeleteSection(c *gin.Context) {
	if err := h.catalogService.DeleteSection(c.Param("id")); err != nil {
		responses.FailError(c, err, "Failed to delete section")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Section deleted successfully")
}

func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req services.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: name and capacity are required")
		return
	}

	room, err := h.catalogService.CreateRoom(req)
	if err != nil {
		responses.FailError(c, err, "Failed to create room")
		return
	}

	responses.Success(c, http.StatusCreated, room, "Room created successfully")
}

func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.catalogService.ListRooms()
	if err != nil {
		responses.FailError(c, err, "Failed to list rooms")
		return
	}

	responses.Success(c, http.StatusOK, rooms, "")
}

func (h *CatalogHandler) DeleteRoom(c *gin.Context) {
	if err := h.catalogService.DeleteRoom(c.Param("id")); err != nil {
		responses.FailError(c, err, "Failed to delete room")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Room deleted successfully")
}

func (h *CatalogHandler) ListWeekdays(c *gin.Context) {
	weekdays, err := h.catalogService.ListWeekdays()
	if err != nil {
		responses.FailError(c, err, "Failed to list weekdays")
		return
	}

	responses.Success(c, http.StatusOK, weekdays, "")
}
