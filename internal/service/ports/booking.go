package ports

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByRequester(ctx context.Context, requester string) ([]*domain.Booking, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
}

// RoomTx is a unit of work scoped to a single locked room. Writes made through it
// become visible together when the surrounding InRoom call returns nil and are
// discarded otherwise.
type RoomTx interface {
	Room() *domain.Room
	// FindActive returns domain.ErrBookingNotFound when the requester has no
	// pending or confirmed booking for the room.
	FindActive(ctx context.Context, requester string) (*domain.Booking, error)
	// GetBooking locks and returns a booking of this room.
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	InsertBooking(ctx context.Context, b *domain.Booking) error
	// DecrementSeats takes one seat and returns domain.ErrRoomFull when none is left.
	DecrementSeats(ctx context.Context) error
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) error
	DeleteBooking(ctx context.Context, id string) error
}

type Transactor interface {
	// InRoom locks the room for the duration of fn. Operations on different
	// rooms do not block each other.
	InRoom(ctx context.Context, roomID string, fn func(ctx context.Context, tx RoomTx) error) error
}
