package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}
