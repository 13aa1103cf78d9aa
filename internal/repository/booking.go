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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByRequester(ctx context.Context, requester string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE requester = $1
              ORDER BY created_at DESC`

	return r.list(ctx, query, requester)
}

func (r *BookingRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE status = $1 AND created_at < $2
              ORDER BY created_at`

	return r.list(ctx, query, domain.BookingStatusPending, cutoff)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
