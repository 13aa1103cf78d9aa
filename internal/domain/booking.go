package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that occupy the (room, requester) slot.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// ParseBookingStatus accepts the legacy "confirm" spelling used by older clients.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	if raw == "confirm" {
		return BookingStatusConfirmed, true
	}
	s := BookingStatus(raw)
	return s, s.Valid()
}

type Booking struct {
	ID        string        `json:"id"`
	RoomID    string        `json:"room_id"`
	Requester string        `json:"requester"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
