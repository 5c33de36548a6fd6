package repositories

import (
	"context"
	"fmt"
	"time"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// AssignmentFilter narrows List by any subset of its fields.
type AssignmentFilter struct {
	TeacherID *uuid.UUID
	SectionID *uuid.UUID
	RoomID    *uuid.UUID
	WeekdayID *uuid.UUID
}

// LockSlotKeys serializes check-then-insert sequences touching the same
// teacher or room. Transaction-scoped advisory locks, always taken in
// teacher-then-room order, so two near-simultaneous submissions cannot both
// pass the conflict check.
func (r *AssignmentRepository) LockSlotKeys(db DB, teacherID, roomID uuid.UUID) error {
	ctx := context.Background()

	if _, err := db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('teacher:' || $1::text, 0))`, teacherID); err != nil {
		return apperrors.Storage("lock teacher slot", err)
	}
	if _, err := db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('room:' || $1::text, 0))`, roomID); err != nil {
		return apperrors.Storage("lock room slot", err)
	}

	return nil
}

// FindOverlaps reports whether any assignment on the given weekday overlaps
// [start, end) on the teacher or room dimension. The third clause of the
// historical predicate was degenerate (end <= new start can never coincide
// with start >= new start for a non-empty interval); the corrected form
// catches an existing interval contained in the new one. legacy=true keeps
// the historical clause for compatibility testing.
func (r *AssignmentRepository) FindOverlaps(db DB, teacherID, roomID, weekdayID uuid.UUID, start, end models.ClockTime, legacy bool) (teacherHit, roomHit bool, err error) {
	ctx := context.Background()

	containment := `(a.start_min >= $4 AND a.end_min <= $5)`
	if legacy {
		containment = `(a.start_min >= $4 AND a.end_min <= $4)`
	}

	query := fmt.Sprintf(`
		SELECT
			COALESCE(bool_or(a.teacher_id = $1), false),
			COALESCE(bool_or(a.room_id = $2), false)
		FROM assignments a
		WHERE a.weekday_id = $3
		  AND (a.teacher_id = $1 OR a.room_id = $2)
		  AND (
			(a.start_min < $4 AND a.end_min > $4) OR
			(a.start_min < $5 AND a.end_min > $4) OR
			%s
		  )
	`, containment)

	err = db.QueryRow(ctx, query, teacherID, roomID, weekdayID, int16(start), int16(end)).Scan(&teacherHit, &roomHit)
	if err != nil {
		return false, false, apperrors.Storage("check overlap", err)
	}

	return teacherHit, roomHit, nil
}

// InsertTx writes the assignment on the caller's transaction. The UNIQUE
// slot constraints and catalog foreign keys are the persistence-layer
// backstop behind the conflict checker.
func (r *AssignmentRepository) InsertTx(db DB, assignment *models.Assignment) error {
	ctx := context.Background()

	assignment.Prepare()

	query := `
		INSERT INTO assignments (id, teacher_id, subject_id, section_id, room_id, weekday_id, start_min, end_min, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	now := time.Now()
	_, err := db.Exec(ctx, query,
		assignment.ID,
		assignment.TeacherID,
		assignment.SubjectID,
		assignment.SectionID,
		assignment.RoomID,
		assignment.WeekdayID,
		int16(assignment.StartTime),
		int16(assignment.EndTime),
		now,
	)
	if isUniqueViolation(err) {
		return &apperrors.UniquenessError{Constraint: constraintName(err)}
	}
	if isForeignKeyViolation(err) {
		return apperrors.Validation(constraintName(err), "references a nonexistent catalog row")
	}
	if err != nil {
		return apperrors.Storage("insert assignment", err)
	}

	assignment.CreatedAt = now
	return nil
}

func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	ctx := context.Background()

	query := `
		SELECT id, teacher_id, subject_id, section_id, room_id, weekday_id, start_min, end_min, created_at
		FROM assignments WHERE id = $1
	`

	var assignment models.Assignment
	var startMin, endMin int16
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.TeacherID,
		&assignment.SubjectID,
		&assignment.SectionID,
		&assignment.RoomID,
		&assignment.WeekdayID,
		&startMin,
		&endMin,
		&assignment.CreatedAt,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, apperrors.Storage("get assignment", err)
	}

	assignment.StartTime = models.ClockTime(startMin)
	assignment.EndTime = models.ClockTime(endMin)
	return &assignment, nil
}

// List returns assignments ordered by teacher surname, given name, weekday
// order, then start time, matching the roster projection.
func (r *AssignmentRepository) List(filter AssignmentFilter) ([]models.Assignment, error) {
	ctx := context.Background()

	query := `
		SELECT a.id, a.teacher_id, a.subject_id, a.section_id, a.room_id, a.weekday_id, a.start_min, a.end_min, a.created_at
		FROM assignments a
		JOIN teachers t ON a.teacher_id = t.id
		JOIN weekdays w ON a.weekday_id = w.id
	`

	var args []any
	addCond := func(column string, id *uuid.UUID) {
		if id == nil {
			return
		}
		args = append(args, *id)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE %s = $%d", column, len(args))
		} else {
			query += fmt.Sprintf(" AND %s = $%d", column, len(args))
		}
	}
	addCond("a.teacher_id", filter.TeacherID)
	addCond("a.section_id", filter.SectionID)
	addCond("a.room_id", filter.RoomID)
	addCond("a.weekday_id", filter.WeekdayID)

	query += ` ORDER BY t.last_name, t.first_name, w.ordinal, a.start_min`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage("list assignments", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		var startMin, endMin int16
		err := rows.Scan(
			&assignment.ID,
			&assignment.TeacherID,
			&assignment.SubjectID,
			&assignment.SectionID,
			&assignment.RoomID,
			&assignment.WeekdayID,
			&startMin,
			&endMin,
			&assignment.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Storage("scan assignment", err)
		}
		assignment.StartTime = models.ClockTime(startMin)
		assignment.EndTime = models.ClockTime(endMin)
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return apperrors.Storage("delete assignment", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("assignment")
	}

	return nil
}
