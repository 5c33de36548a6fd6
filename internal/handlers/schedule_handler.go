package handlers

import (
	"net/http"

	"timetable-backend/internal/responses"
	"timetable-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// AddAssignment proposes a slot. A 409 answer names the dimension that
// collided (teacher, room, or both) so the client can report why.
func (h *ScheduleHandler) AddAssignment(c *gin.Context) {
	var req services.AddAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: all assignment fields are required")
		return
	}

	assignment, err := h.scheduleService.AddAssignment(req)
	if err != nil {
		responses.FailError(c, err, "Failed to add assignment")
		return
	}

	responses.Success(c, http.StatusCreated, assignment, "Assignment added successfully")
}

func (h *ScheduleHandler) ListAssignments(c *gin.Context) {
	filter := services.ListAssignmentsFilter{
		TeacherID: c.Query("teacher_id"),
		SectionID: c.Query("section_id"),
		RoomID:    c.Query("room_id"),
		WeekdayID: c.Query("weekday_id"),
	}

	assignments, err := h.scheduleService.ListAssignments(filter)
	if err != nil {
		responses.FailError(c, err, "Failed to list assignments")
		return
	}

	responses.Success(c, http.StatusOK, assignments, "")
}

func (h *ScheduleHandler) RemoveAssignment(c *gin.Context) {
	if err := h.scheduleService.RemoveAssignment(c.Param("id")); err != nil {
		responses.FailError(c, err, "Failed to remove assignment")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Assignment removed successfully")
}
