package repository

import "github.com/stpnv0/HotelBooker/internal/domain"

const (
	roomColumns    = `id, name, total_seats, available_seats, created_at, updated_at`
	bookingColumns = `id, room_id, requester, status, created_at, updated_at`
)

// uniqueViolation is the Postgres code for a unique index conflict.
const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var r domain.Room
	if err := row.Scan(&r.ID, &r.Name, &r.TotalSeats, &r.AvailableSeats, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.RoomID, &b.Requester, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
