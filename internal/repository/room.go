package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (id, name, total_seats, available_seats, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		room.ID, room.Name, room.TotalSeats, room.AvailableSeats, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + `
			  FROM rooms
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	query := `SELECT ` + roomColumns + `
			  FROM rooms
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var res []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, room)
	}

	return res, rows.Err()
}
