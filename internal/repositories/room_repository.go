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

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) Create(room *models.Room) error {
	ctx := context.Background()

	room.Prepare()

	query := `
		INSERT INTO rooms (id, name, capacity, created_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Capacity,
		now,
	)
	if isUniqueViolation(err) {
		return &apperrors.UniquenessError{Constraint: constraintName(err)}
	}
	if err != nil {
		return apperrors.Storage("create room", err)
	}

	room.CreatedAt = now
	return nil
}

func (r *RoomRepository) GetByID(id uuid.UUID) (*models.Room, error) {
	ctx := context.Background()

	query := `SELECT id, name, capacity, created_at FROM rooms WHERE id = $1`

	var room models.Room
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage("get room", err)
	}

	return &room, nil
}

func (r *RoomRepository) List() ([]models.Room, error) {
	ctx := context.Background()

	query := `SELECT id, name, capacity, created_at FROM rooms ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("list rooms", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Storage("scan room", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return &apperrors.ReferencedError{Entity: "room"}
	}
	if err != nil {
		return apperrors.Storage("delete room", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("room")
	}

	return nil
}
