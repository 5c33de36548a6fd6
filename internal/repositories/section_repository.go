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

type SectionRepository struct {
	pool *pgxpool.Pool
}

func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

func (r *SectionRepository) Create(section *models.Section) error {
	ctx := context.Background()

	section.Prepare()

	query := `
		INSERT INTO sections (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		section.ID,
		section.Name,
		section.Description,
		now,
	)
	if isUniqueViolation(err) {
		return &apperrors.UniquenessError{Constraint: constraintName(err)}
	}
	if err != nil {
		return apperrors.Storage("create section", err)
	}

	section.CreatedAt = now
	return nil
}

func (r *SectionRepository) GetByID(id uuid.UUID) (*models.Section, error) {
	ctx := context.Background()

	query := `SELECT id, name, description, created_at FROM sections WHERE id = $1`

	var section models.Section
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.Name,
		&section.Description,
		&section.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage("get section", err)
	}

	return &section, nil
}

func (r *SectionRepository) List() ([]models.Section, error) {
	ctx := context.Background()

	query := `SELECT id, name, description, created_at FROM sections ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("list sections", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var section models.Section
		err := rows.Scan(
			&section.ID,
			&section.Name,
			&section.Description,
			&section.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Storage("scan section", err)
		}
		sections = append(sections, section)
	}

	return sections, rows.Err()
}

func (r *SectionRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return &apperrors.ReferencedError{Entity: "section"}
	}
	if err != nil {
		return apperrors.Storage("delete section", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("section")
	}

	return nil
}
