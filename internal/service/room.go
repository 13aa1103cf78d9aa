package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

type RoomService struct {
	repo ports.RoomRepo
}

func NewRoomService(repo ports.RoomRepo) *RoomService {
	return &RoomService{repo: repo}
}

func (s *RoomService) CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.TotalSeats < 0 {
		return nil, fmt.Errorf("%w: total_seats must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:             uuid.New().String(),
		Name:           name,
		TotalSeats:     input.TotalSeats,
		AvailableSeats: input.TotalSeats,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}
