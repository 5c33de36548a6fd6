package services

import (
	"fmt"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/models"
	"timetable-backend/internal/repositories"
	"timetable-backend/internal/utils"
)

// ReportService produces the projections an external renderer consumes: the
// flat full-roster list and the per-section weekly grid. Read-only.
type ReportService struct {
	reportRepo  *repositories.ReportRepository
	sectionRepo *repositories.SectionRepository
	weekdayRepo *repositories.WeekdayRepository
}

func NewReportService(
	reportRepo *repositories.ReportRepository,
	sectionRepo *repositories.SectionRepository,
	weekdayRepo *repositories.WeekdayRepository,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		sectionRepo: sectionRepo,
		weekdayRepo: weekdayRepo,
	}
}

// Roster returns every assignment with display names resolved, ordered by
// teacher surname, given name, weekday order, start time.
func (s *ReportService) Roster() ([]models.RosterEntry, error) {
	return s.reportRepo.Roster()
}

// SectionSchedule buckets a section's assignments into one entry list per
// seeded weekday. Weekdays without assignments appear with empty buckets so
// the grid renderer gets every column.
func (s *ReportService) SectionSchedule(sectionID string) (*models.SectionSchedule, error) {
	sectionUUID, err := utils.ParseUUID(sectionID)
	if err != nil {
		return nil, apperrors.Validation("id", fmt.Sprintf("invalid section ID: %v", err))
	}

	section, err := s.sectionRepo.GetByID(sectionUUID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, apperrors.NotFound("section")
	}

	weekdays, err := s.weekdayRepo.List()
	if err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.SectionWeek(sectionUUID)
	if err != nil {
		return nil, err
	}

	schedule := &models.SectionSchedule{
		SectionID: section.ID,
		Section:   section.Name,
		Days:      make([]models.SectionDay, 0, len(weekdays)),
	}

	for _, weekday := range weekdays {
		day := models.SectionDay{
			WeekdayID: weekday.ID,
			Weekday:   weekday.Name,
			Ordinal:   weekday.Ordinal,
			Entries:   []models.SectionEntry{},
		}
		for _, row := range rows {
			if row.WeekdayID == weekday.ID {
				day.Entries = append(day.Entries, row.Entry)
			}
		}
		schedule.Days = append(schedule.Days, day)
	}

	return schedule, nil
}
