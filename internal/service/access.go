package service

import "github.com/stpnv0/HotelBooker/internal/domain"

// CheckOwnership allows a verified caller to act only on its own identity.
func CheckOwnership(caller, target string) error {
	if caller == "" || caller != target {
		return domain.ErrForbidden
	}
	return nil
}
