package domain

import "time"

type BookingEventType string

const (
	BookingCreated       BookingEventType = "booking.created"
	BookingConfirmed     BookingEventType = "booking.confirmed"
	BookingStatusChanged BookingEventType = "booking.status_changed"
	BookingDeleted       BookingEventType = "booking.deleted"
)

type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  string           `json:"booking_id"`
	RoomID     string           `json:"room_id"`
	Requester  string           `json:"requester"`
	Status     BookingStatus    `json:"status"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, b *Booking) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		Requester:  b.Requester,
		Status:     b.Status,
		OccurredAt: time.Now().UTC(),
	}
}
