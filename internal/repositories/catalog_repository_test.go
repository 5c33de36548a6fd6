package repositories

import (
	"testing"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/database"
	"timetable-backend/internal/database/dbtest"
	"timetable-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fiveDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func TestCatalogRepositories(t *testing.T) {
	pool := dbtest.NewPool(t, fiveDays)

	teachers := NewTeacherRepository(pool)
	subjects := NewSubjectRepository(pool)
	sections := NewSectionRepository(pool)
	rooms := NewRoomRepository(pool)
	weekdays := NewWeekdayRepository(pool)
	assignments := NewAssignmentRepository(pool)

	t.Run("weekday seed is ordered and idempotent", func(t *testing.T) {
		require.NoError(t, database.SeedWeekdays(pool, fiveDays))

		week, err := weekdays.List()
		require.NoError(t, err)
		require.Len(t, week, 5)
		for i, day := range week {
			require.Equal(t, fiveDays[i], day.Name)
			require.Equal(t, int16(i+1), day.Ordinal)
		}
	})

	t.Run("duplicate teacher name pair is rejected", func(t *testing.T) {
		first := &models.Teacher{FirstName: "Ana", LastName: "García"}
		require.NoError(t, teachers.Create(first))

		dup := &models.Teacher{FirstName: "Ana", LastName: "García"}
		err := teachers.Create(dup)
		var uniquenessErr *apperrors.UniquenessError
		require.ErrorAs(t, err, &uniquenessErr)

		// A shared last name alone is fine.
		sibling := &models.Teacher{FirstName: "Luis", LastName: "García"}
		require.NoError(t, teachers.Create(sibling))
	})

	t.Run("duplicate catalog names are rejected", func(t *testing.T) {
		require.NoError(t, subjects.Create(&models.Subject{Name: "History"}))
		err := subjects.Create(&models.Subject{Name: "History"})
		var uniquenessErr *apperrors.UniquenessError
		require.ErrorAs(t, err, &uniquenessErr)

		require.NoError(t, rooms.Create(&models.Room{Name: "Lab 1", Capacity: 20}))
		err = rooms.Create(&models.Room{Name: "Lab 1", Capacity: 40})
		require.ErrorAs(t, err, &uniquenessErr)
	})

	t.Run("deleting a missing row reports not found", func(t *testing.T) {
		err := teachers.Delete(uuid.New())
		var notFoundErr *apperrors.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)

		err = assignments.Delete(uuid.New())
		require.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("referenced catalog rows cannot be deleted", func(t *testing.T) {
		teacher := &models.Teacher{FirstName: "Carla", LastName: "Mendez"}
		subject := &models.Subject{Name: "Chemistry"}
		section := &models.Section{Name: "Section C"}
		room := &models.Room{Name: "Room 201", Capacity: 35}
		require.NoError(t, teachers.Create(teacher))
		require.NoError(t, subjects.Create(subject))
		require.NoError(t, sections.Create(section))
		require.NoError(t, rooms.Create(room))

		week, err := weekdays.List()
		require.NoError(t, err)

		assignment := &models.Assignment{
			TeacherID: teacher.ID,
			SubjectID: subject.ID,
			SectionID: section.ID,
			RoomID:    room.ID,
			WeekdayID: week[0].ID,
			StartTime: 480,
			EndTime:   540,
		}
		require.NoError(t, assignments.InsertTx(pool, assignment))

		var referencedErr *apperrors.ReferencedError
		require.ErrorAs(t, teachers.Delete(teacher.ID), &referencedErr)
		require.ErrorAs(t, subjects.Delete(subject.ID), &referencedErr)
		require.ErrorAs(t, sections.Delete(section.ID), &referencedErr)
		require.ErrorAs(t, rooms.Delete(room.ID), &referencedErr)

		// Once the assignment is gone the catalog row is free.
		require.NoError(t, assignments.Delete(assignment.ID))
		require.NoError(t, teachers.Delete(teacher.ID))
	})

	t.Run("room capacity must be positive", func(t *testing.T) {
		err := rooms.Create(&models.Room{Name: "Broken Room", Capacity: 0})
		require.Error(t, err)
	})
}
