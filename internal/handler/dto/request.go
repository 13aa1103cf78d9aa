package dto

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CreateRoomRequest struct {
	Name       string `json:"name" binding:"required"`
	TotalSeats *int   `json:"total_seats" binding:"required,min=0"`
}

type CreateBookingRequest struct {
	RoomID            string `json:"room_id" binding:"required,uuid"`
	RequesterIdentity string `json:"requester_identity" binding:"required,email"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required"`
}
