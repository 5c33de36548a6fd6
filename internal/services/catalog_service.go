package services

import (
	"fmt"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/models"
	"timetable-backend/internal/repositories"
	"timetable-backend/internal/utils"
)

// CatalogService covers the reference catalogs: simple create/list/delete
// with field validation. Weekdays are seed-only and exposed read-only.
type CatalogService struct {
	teacherRepo *repositories.TeacherRepository
	subjectRepo *repositories.SubjectRepository
	sectionRepo *repositories.SectionRepository
	roomRepo    *repositories.RoomRepository
	weekdayRepo *repositories.WeekdayRepository
}

func NewCatalogService(
	teacherRepo *repositories.TeacherRepository,
	subjectRepo *repositories.SubjectRepository,
	sectionRepo *repositories.SectionRepository,
	roomRepo *repositories.RoomRepository,
	weekdayRepo *repositories.WeekdayRepository,
) *CatalogService {
	return &CatalogService{
		teacherRepo: teacherRepo,
		subjectRepo: subjectRepo,
		sectionRepo: sectionRepo,
		roomRepo:    roomRepo,
		weekdayRepo: weekdayRepo,
	}
}

type CreateTeacherRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

func (s *CatalogService) CreateTeacher(req CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	teacher.Prepare()

	if teacher.FirstName == "" {
		return nil, apperrors.Validation("first_name", "is required")
	}
	if teacher.LastName == "" {
		return nil, apperrors.Validation("last_name", "is required")
	}

	if err := s.teacherRepo.Create(teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *CatalogService) ListTeachers() ([]models.Teacher, error) {
	return s.teacherRepo.List()
}

func (s *CatalogService) DeleteTeacher(id string) error {
	teacherUUID, err := utils.ParseUUID(id)
	if err != nil {
		return apperrors.Validation("id", fmt.Sprintf("invalid teacher ID: %v", err))
	}
	return s.teacherRepo.Delete(teacherUUID)
}

type CreateSubjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

func (s *CatalogService) CreateSubject(req CreateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{
		Name:        req.Name,
		Description: req.Description,
	}
	subject.Prepare()

	if subject.Name == "" {
		return nil, apperrors.Validation("name", "is required")
	}

	if err := s.subjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *CatalogService) ListSubjects() ([]models.Subject, error) {
	return s.subjectRepo.List()
}

func (s *CatalogService) DeleteSubject(id string) error {
	subjectUUID, err := utils.ParseUUID(id)
	if err != nil {
		return apperrors.Validation("id", fmt.Sprintf("invalid subject ID: %v", err))
	}
	return s.subjectRepo.Delete(subjectUUID)
}

type CreateSectionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

func (s *CatalogService) CreateSection(req CreateSectionRequest) (*models.Section, error) {
	section := &models.Section{
		Name:        req.Name,
		Description: req.Description,
	}
	section.Prepare()

	if section.Name == "" {
		return nil, apperrors.Validation("name", "is required")
	}

	if err := s.sectionRepo.Create(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *CatalogService) ListSections() ([]models.Section, error) {
	return s.sectionRepo.List()
}

func (s *CatalogService) DeleteSection(id string) error {
	sectionUUID, err := utils.ParseUUID(id)
	if err != nil {
		return apperrors.Validation("id", fmt.Sprintf("invalid section ID: %v", err))
	}
	return s.sectionRepo.Delete(sectionUUID)
}

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

func (s *CatalogService) CreateRoom(req CreateRoomRequest) (*models.Room, error) {
	room := &models.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	room.Prepare()

	if room.Name == "" {
		return nil, apperrors.Validation("name", "is required")
	}
	if room.Capacity <= 0 {
		return nil, apperrors.Validation("capacity", "must be a positive integer")
	}

	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *CatalogService) ListRooms() ([]models.Room, error) {
	return s.roomRepo.List()
}

func (s *CatalogService) DeleteRoom(id string) error {
	roomUUID, err := utils.ParseUUID(id)
	if err != nil {
		return apperrors.Validation("id", fmt.Sprintf("invalid room ID: %v", err))
	}
	return s.roomRepo.Delete(roomUUID)
}

func (s *CatalogService) ListWeekdays() ([]models.Weekday, error) {
	return s.weekdayRepo.List()
}
