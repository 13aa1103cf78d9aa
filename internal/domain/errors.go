package domain

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrRoomFull         = errors.New("room is fully booked")
	ErrAlreadyBooked    = errors.New("room is already booked by this requester")
	ErrAlreadyConfirmed = errors.New("booking is already confirmed or no longer pending")
	ErrForbidden        = errors.New("forbidden access")
)

var (
	ErrValidation = errors.New("validation error")
)

var rejectionCodes = []struct {
	err  error
	code string
}{
	{ErrRoomNotFound, "RoomNotFound"},
	{ErrBookingNotFound, "NotFound"},
	{ErrRoomFull, "RoomFull"},
	{ErrAlreadyBooked, "AlreadyBooked"},
	{ErrAlreadyConfirmed, "AlreadyConfirmed"},
	{ErrForbidden, "Forbidden"},
	{ErrValidation, "Validation"},
}

// RejectionCode returns the stable code of a business-rule rejection.
// ok is false for storage and other unexpected errors.
func RejectionCode(err error) (code string, ok bool) {
	for _, rc := range rejectionCodes {
		if errors.Is(err, rc.err) {
			return rc.code, true
		}
	}
	return "", false
}

func IsRejection(err error) bool {
	_, ok := RejectionCode(err)
	return ok
}
