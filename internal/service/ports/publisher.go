package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingPublisher interface {
	PublishBookingEvent(ctx context.Context, event domain.BookingEvent)
}
