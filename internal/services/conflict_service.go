package services

import (
	"timetable-backend/internal/config"
	"timetable-backend/internal/models"
	"timetable-backend/internal/repositories"

	"github.com/google/uuid"
)

// Conflict reports which dimension(s) an overlap was found on.
type Conflict struct {
	Teacher bool
	Room    bool
}

func (c Conflict) Found() bool {
	return c.Teacher || c.Room
}

// ConflictService decides whether a proposed assignment overlaps an existing
// one sharing the teacher or the room on the same weekday. It never writes.
type ConflictService struct {
	assignmentRepo *repositories.AssignmentRepository
	cfg            config.Schedule
}

func NewConflictService(assignmentRepo *repositories.AssignmentRepository, cfg config.Schedule) *ConflictService {
	return &ConflictService{
		assignmentRepo: assignmentRepo,
		cfg:            cfg,
	}
}

// Check runs the overlap scan on the given handle (pool or transaction).
// Fail closed: on a lookup failure both dimensions are reported as colliding
// alongside the storage error, so an unavailable store never admits a slot.
func (s *ConflictService) Check(db repositories.DB, teacherID, roomID, weekdayID uuid.UUID, start, end models.ClockTime) (Conflict, error) {
	teacherHit, roomHit, err := s.assignmentRepo.FindOverlaps(db, teacherID, roomID, weekdayID, start, end, s.cfg.LegacyOverlap)
	if err != nil {
		return Conflict{Teacher: true, Room: true}, err
	}

	return Conflict{Teacher: teacherHit, Room: roomHit}, nil
}
