package handlers

import (
	"net/http"

	"timetable-backend/internal/responses"
	"timetable-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) Roster(c *gin.Context) {
	entries, err := h.reportService.Roster()
	if err != nil {
		responses.FailError(c, err, "Failed to build roster report")
		return
	}

	responses.Success(c, http.StatusOK, entries, "")
}

func (h *ReportHandler) SectionSchedule(c *gin.Context) {
	schedule, err := h.reportService.SectionSchedule(c.Param("id"))
	if err != nil {
		responses.FailError(c, err, "Failed to build section schedule")
		return
	}

	responses.Success(c, http.StatusOK, schedule, "")
}
