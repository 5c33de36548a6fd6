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

type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) Create(subject *models.Subject) error {
	ctx := context.Background()

	subject.Prepare()

	query := `
		INSERT INTO subjects (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		subject.ID,
		subject.Name,
		subject.Description,
		now,
	)
	if isUniqueViolation(err) {
		return &apperrors.UniquenessError{Constraint: constraintName(err)}
	}
	if err != nil {
		return apperrors.Storage("create subject", err)
	}

	subject.CreatedAt = now
	return nil
}

func (r *SubjectRepository) GetByID(id uuid.UUID) (*models.Subject, error) {
	ctx := context.Background()

	query := `SELECT id, name, description, created_at FROM subjects WHERE id = $1`

	var subject models.Subject
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Description,
		&subject.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage("get subject", err)
	}

	return &subject, nil
}

func (r *SubjectRepository) List() ([]models.Subject, error) {
	ctx := context.Background()

	query := `SELECT id, name, description, created_at FROM subjects ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("list subjects", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var subject models.Subject
		err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Description,
			&subject.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Storage("scan subject", err)
		}
		subjects = append(subjects, subject)
	}

	return subjects, rows.Err()
}

func (r *SubjectRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return &apperrors.ReferencedError{Entity: "subject"}
	}
	if err != nil {
		return apperrors.Storage("delete subject", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("subject")
	}

	return nil
}
