package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
)

// Transactor runs room-scoped units of work in a single Postgres transaction.
// The room row is locked FOR UPDATE, so every unit of work on the same room is
// serialized while different rooms proceed in parallel.
type Transactor struct {
	db *dbpg.DB
}

func NewTransactor(db *dbpg.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) InRoom(ctx context.Context, roomID string, fn func(ctx context.Context, tx ports.RoomTx) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + roomColumns + `
			  FROM rooms
			  WHERE id = $1
			  FOR UPDATE`
	room, err := scanRoom(tx.QueryRowContext(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	if err = fn(ctx, &roomTx{tx: tx, room: room}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

type roomTx struct {
	tx   *sql.Tx
	room *domain.Room
}

func (t *roomTx) Room() *domain.Room {
	r := *t.room
	return &r
}

func (t *roomTx) FindActive(ctx context.Context, requester string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE room_id = $1 AND requester = $2 AND status = ANY($3)
			  LIMIT 1`

	b, err := scanBooking(t.tx.QueryRowContext(ctx, query, t.room.ID, requester, pq.Array(domain.ActiveStatuses)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find active booking: %w", err)
	}

	return b, nil
}

func (t *roomTx) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1 AND room_id = $2
			  FOR UPDATE`

	b, err := scanBooking(t.tx.QueryRowContext(ctx, query, id, t.room.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	return b, nil
}

func (t *roomTx) InsertBooking(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, room_id, requester, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := t.tx.ExecContext(
		ctx, query, b.ID, b.RoomID,
		b.Requester, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (t *roomTx) DecrementSeats(ctx context.Context) error {
	query := `UPDATE rooms
			  SET available_seats = available_seats - 1, updated_at = now()
			  WHERE id = $1 AND available_seats > 0`
	res, err := t.tx.ExecContext(ctx, query, t.room.ID)
	if err != nil {
		return fmt.Errorf("decrement seats: %w", err)
	}

	if err = expectOneRow(res, domain.ErrRoomFull); err != nil {
		return err
	}

	t.room.AvailableSeats--
	return nil
}

func (t *roomTx) SetStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND room_id = $2`
	res, err := t.tx.ExecContext(ctx, query, id, t.room.ID, status)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("update booking status: %w", err)
	}

	return expectOneRow(res, domain.ErrBookingNotFound)
}

func (t *roomTx) DeleteBooking(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1 AND room_id = $2`
	res, err := t.tx.ExecContext(ctx, query, id, t.room.ID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return expectOneRow(res, domain.ErrBookingNotFound)
}

func expectOneRow(res sql.Result, none error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return none
	}
	return nil
}
