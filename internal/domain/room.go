package domain

import "time"

type Room struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *Room) HasFreeSeat() bool {
	return r.AvailableSeats > 0
}

type CreateRoomInput struct {
	Name       string
	TotalSeats int
}
