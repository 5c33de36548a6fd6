package repositories

import (
	"context"
	"errors"
	"time"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeacherRepository struct {
	pool *pgxpool.Pool
}

func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

func (r *TeacherRepository) Create(teacher *models.Teacher) error {
	ctx := context.Background()

	teacher.Prepare()

	query := `
		INSERT INTO teachers (id, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		teacher.ID,
		teacher.FirstName,
		teacher.LastName,
		now,
	)
	if isUniqueViolation(err) {
		return &apperrors.UniquenessError{Constraint: constraintName(err)}
	}
	if err != nil {
		return apperrors.Storage("create teacher", err)
	}

	teacher.CreatedAt = now
	return nil
}

func (r *TeacherRepository) GetByID(id uuid.UUID) (*models.Teacher, error) {
	ctx := context.Background()

	query := `SELECT id, first_name, last_name, created_at FROM teachers WHERE id = $1`

	var teacher models.Teacher
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage("get teacher", err)
	}

	return &teacher, nil
}

func (r *TeacherRepository) List() ([]models.Teacher, error) {
	ctx := context.Background()

	query := `
		SELECT id, first_name, last_name, created_at
		FROM teachers
		ORDER BY last_name, first_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("list teachers", err)
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		err := rows.Scan(
			&teacher.ID,
			&teacher.FirstName,
			&teacher.LastName,
			&teacher.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Storage("scan teacher", err)
		}
		teachers = append(teachers, teacher)
	}

	return teachers, rows.Err()
}

func (r *TeacherRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return &apperrors.ReferencedError{Entity: "teacher"}
	}
	if err != nil {
		return apperrors.Storage("delete teacher", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("teacher")
	}

	return nil
}
