package dto

import (
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
	CreatedAt      string `json:"created_at"`
}

type BookingResponse struct {
	ID                string `json:"id"`
	RoomID            string `json:"room_id"`
	RequesterIdentity string `json:"requester_identity"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

type TokenResponse struct {
	Success bool `json:"success"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:             r.ID,
		Name:           r.Name,
		TotalSeats:     r.TotalSeats,
		AvailableSeats: r.AvailableSeats,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		RoomID:            b.RoomID,
		RequesterIdentity: b.Requester,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
}
