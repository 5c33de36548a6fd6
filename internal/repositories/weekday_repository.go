package repositories

import (
	"context"
	"errors"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WeekdayRepository is read-only: the weekday catalog is seeded once by the
// migrations and never mutated afterwards.
type WeekdayRepository struct {
	pool *pgxpool.Pool
}

func NewWeekdayRepository(pool *pgxpool.Pool) *WeekdayRepository {
	return &WeekdayRepository{pool: pool}
}

func (r *WeekdayRepository) GetByID(id uuid.UUID) (*models.Weekday, error) {
	ctx := context.Background()

	query := `SELECT id, name, ordinal FROM weekdays WHERE id = $1`

	var weekday models.Weekday
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&weekday.ID,
		&weekday.Name,
		&weekday.Ordinal,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage("get weekday", err)
	}

	return &weekday, nil
}

func (r *WeekdayRepository) List() ([]models.Weekday, error) {
	ctx := context.Background()

	query := `SELECT id, name, ordinal FROM weekdays ORDER BY ordinal`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("list weekdays", err)
	}
	defer rows.Close()

	var weekdays []models.Weekday
	for rows.Next() {
		var weekday models.Weekday
		err := rows.Scan(
			&weekday.ID,
			&weekday.Name,
			&weekday.Ordinal,
		)
		if err != nil {
			return nil, apperrors.Storage("scan weekday", err)
		}
		weekdays = append(weekdays, weekday)
	}

	return weekdays, rows.Err()
}
