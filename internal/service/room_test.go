package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomService_CreateRoom_Success(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Name == "Deluxe" && r.TotalSeats == 4 && r.AvailableSeats == 4
	})).Return(nil)

	room, err := svc.CreateRoom(context.Background(), domain.CreateRoomInput{Name: " Deluxe ", TotalSeats: 4})

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, 4, room.AvailableSeats)
}

func TestRoomService_CreateRoom_Validation(t *testing.T) {
	svc := NewRoomService(mocks.NewMockRoomRepo(t))

	_, err := svc.CreateRoom(context.Background(), domain.CreateRoomInput{Name: "", TotalSeats: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateRoom(context.Background(), domain.CreateRoomInput{Name: "Suite", TotalSeats: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_CreateRoom_RepoError(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.CreateRoom(context.Background(), domain.CreateRoomInput{Name: "Suite", TotalSeats: 1})

	require.Error(t, err)
	assert.False(t, domain.IsRejection(err))
}

func TestRoomService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}
