package services

import (
	"context"
	"fmt"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/models"
	"timetable-backend/internal/repositories"
	"timetable-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleService owns the assignment lifecycle: insert gated by the
// conflict checker, unconditional delete, filtered listing. Assignments are
// either absent or present; there is no intermediate state.
type ScheduleService struct {
	pool           *pgxpool.Pool
	assignmentRepo *repositories.AssignmentRepository
	conflicts      *ConflictService
}

func NewScheduleService(pool *pgxpool.Pool, assignmentRepo *repositories.AssignmentRepository, conflicts *ConflictService) *ScheduleService {
	return &ScheduleService{
		pool:           pool,
		assignmentRepo: assignmentRepo,
		conflicts:      conflicts,
	}
}

type AddAssignmentRequest struct {
	TeacherID string `json:"teacher_id" binding:"required"`
	SubjectID string `json:"subject_id" binding:"required"`
	SectionID string `json:"section_id" binding:"required"`
	RoomID    string `json:"room_id" binding:"required"`
	WeekdayID string `json:"weekday_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// AddAssignment validates the proposal, then runs check-then-insert as one
// atomic unit: advisory locks on the teacher and room keys serialize
// concurrent submissions so two overlapping rows cannot both land.
func (s *ScheduleService) AddAssignment(req AddAssignmentRequest) (*models.Assignment, error) {
	teacherID, err := utils.ParseUUID(req.TeacherID)
	if err != nil {
		return nil, apperrors.Validation("teacher_id", fmt.Sprintf("invalid ID: %v", err))
	}
	subjectID, err := utils.ParseUUID(req.SubjectID)
	if err != nil {
		return nil, apperrors.Validation("subject_id", fmt.Sprintf("invalid ID: %v", err))
	}
	sectionID, err := utils.ParseUUID(req.SectionID)
	if err != nil {
		return nil, apperrors.Validation("section_id", fmt.Sprintf("invalid ID: %v", err))
	}
	roomID, err := utils.ParseUUID(req.RoomID)
	if err != nil {
		return nil, apperrors.Validation("room_id", fmt.Sprintf("invalid ID: %v", err))
	}
	weekdayID, err := utils.ParseUUID(req.WeekdayID)
	if err != nil {
		return nil, apperrors.Validation("weekday_id", fmt.Sprintf("invalid ID: %v", err))
	}

	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		return nil, apperrors.Validation("start_time", err.Error())
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		return nil, apperrors.Validation("end_time", err.Error())
	}
	if start >= end {
		return nil, apperrors.Validation("end_time", "must be after start_time")
	}

	ctx := context.Background()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.Storage("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := s.assignmentRepo.LockSlotKeys(tx, teacherID, roomID); err != nil {
		return nil, err
	}

	conflict, err := s.conflicts.Check(tx, teacherID, roomID, weekdayID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict.Found() {
		return nil, &apperrors.ConflictError{Teacher: conflict.Teacher, Room: conflict.Room}
	}

	assignment := &models.Assignment{
		TeacherID: teacherID,
		SubjectID: subjectID,
		SectionID: sectionID,
		RoomID:    roomID,
		WeekdayID: weekdayID,
		StartTime: start,
		EndTime:   end,
	}

	if err := s.assignmentRepo.InsertTx(tx, assignment); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.Storage("commit assignment", err)
	}

	return assignment, nil
}

func (s *ScheduleService) RemoveAssignment(id string) error {
	assignmentUUID, err := utils.ParseUUID(id)
	if err != nil {
		return apperrors.Validation("id", fmt.Sprintf("invalid assignment ID: %v", err))
	}
	return s.assignmentRepo.Delete(assignmentUUID)
}

type ListAssignmentsFilter struct {
	TeacherID string
	SectionID string
	RoomID    string
	WeekdayID string
}

func (s *ScheduleService) ListAssignments(filter ListAssignmentsFilter) ([]models.Assignment, error) {
	var repoFilter repositories.AssignmentFilter

	parse := func(field, value string, dest **uuid.UUID) error {
		if value == "" {
			return nil
		}
		id, err := utils.ParseUUID(value)
		if err != nil {
			return apperrors.Validation(field, fmt.Sprintf("invalid ID: %v", err))
		}
		*dest = &id
		return nil
	}

	if err := parse("teacher_id", filter.TeacherID, &repoFilter.TeacherID); err != nil {
		return nil, err
	}
	if err := parse("section_id", filter.SectionID, &repoFilter.SectionID); err != nil {
		return nil, err
	}
	if err := parse("room_id", filter.RoomID, &repoFilter.RoomID); err != nil {
		return nil, err
	}
	if err := parse("weekday_id", filter.WeekdayID, &repoFilter.WeekdayID); err != nil {
		return nil, err
	}

	return s.assignmentRepo.List(repoFilter)
}
