package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, seats int) *domain.Room {
	t.Helper()
	room := &domain.Room{ID: "r1", Name: "Room", TotalSeats: seats, AvailableSeats: seats, CreatedAt: time.Now()}
	require.NoError(t, s.Rooms().Create(context.Background(), room))
	return room
}

func TestStore_InRoom_RoomNotFound(t *testing.T) {
	s := New()

	err := s.InRoom(context.Background(), "missing", func(context.Context, ports.RoomTx) error {
		t.Fatal("unit of work must not run for a missing room")
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestStore_InRoom_UnknownRoomsTakeNoLock(t *testing.T) {
	s := New()
	seed(t, s, 1)

	for i := 0; i < 100; i++ {
		err := s.InRoom(context.Background(), fmt.Sprintf("missing-%d", i), func(context.Context, ports.RoomTx) error {
			return nil
		})
		require.ErrorIs(t, err, domain.ErrRoomNotFound)
	}
	require.NoError(t, s.InRoom(context.Background(), "r1", func(context.Context, ports.RoomTx) error {
		return nil
	}))

	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	assert.Len(t, s.locks, 1)
}

func TestStore_InRoom_DiscardsWritesOnError(t *testing.T) {
	s := New()
	seed(t, s, 1)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.InRoom(ctx, "r1", func(ctx context.Context, tx ports.RoomTx) error {
		require.NoError(t, tx.InsertBooking(ctx, &domain.Booking{ID: "b1", RoomID: "r1", Requester: "a", Status: domain.BookingStatusPending}))
		require.NoError(t, tx.DecrementSeats(ctx))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Bookings().GetByID(ctx, "b1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	room, err := s.Rooms().GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, room.AvailableSeats)
}

func TestStore_InRoom_StagedWritesVisibleInsideScope(t *testing.T) {
	s := New()
	seed(t, s, 1)
	ctx := context.Background()

	err := s.InRoom(ctx, "r1", func(ctx context.Context, tx ports.RoomTx) error {
		require.NoError(t, tx.InsertBooking(ctx, &domain.Booking{ID: "b1", RoomID: "r1", Requester: "a", Status: domain.BookingStatusPending}))

		active, err := tx.FindActive(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "b1", active.ID)

		require.NoError(t, tx.DecrementSeats(ctx))
		assert.Equal(t, 0, tx.Room().AvailableSeats)
		assert.ErrorIs(t, tx.DecrementSeats(ctx), domain.ErrRoomFull)

		require.NoError(t, tx.DeleteBooking(ctx, "b1"))
		_, err = tx.GetBooking(ctx, "b1")
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
		return nil
	})
	require.NoError(t, err)

	room, err := s.Rooms().GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 0, room.AvailableSeats)
}

func TestStore_FindActive_IgnoresCancelled(t *testing.T) {
	s := New()
	seed(t, s, 1)
	ctx := context.Background()

	require.NoError(t, s.InRoom(ctx, "r1", func(ctx context.Context, tx ports.RoomTx) error {
		return tx.InsertBooking(ctx, &domain.Booking{ID: "b1", RoomID: "r1", Requester: "a", Status: domain.BookingStatusCancelled})
	}))

	err := s.InRoom(ctx, "r1", func(ctx context.Context, tx ports.RoomTx) error {
		_, err := tx.FindActive(ctx, "a")
		return err
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestStore_GetBooking_OtherRoom(t *testing.T) {
	s := New()
	seed(t, s, 1)
	ctx := context.Background()
	require.NoError(t, s.Rooms().Create(ctx, &domain.Room{ID: "r2", Name: "Other", TotalSeats: 1, AvailableSeats: 1}))

	require.NoError(t, s.InRoom(ctx, "r2", func(ctx context.Context, tx ports.RoomTx) error {
		return tx.InsertBooking(ctx, &domain.Booking{ID: "b2", RoomID: "r2", Requester: "a", Status: domain.BookingStatusPending})
	}))

	err := s.InRoom(ctx, "r1", func(ctx context.Context, tx ports.RoomTx) error {
		_, err := tx.GetBooking(ctx, "b2")
		return err
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_ListPendingBefore(t *testing.T) {
	s := New()
	seed(t, s, 3)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.InRoom(ctx, "r1", func(ctx context.Context, tx ports.RoomTx) error {
		for _, b := range []domain.Booking{
			{ID: "old", RoomID: "r1", Requester: "a", Status: domain.BookingStatusPending, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "fresh", RoomID: "r1", Requester: "b", Status: domain.BookingStatusPending, CreatedAt: now},
			{ID: "done", RoomID: "r1", Requester: "c", Status: domain.BookingStatusConfirmed, CreatedAt: now.Add(-2 * time.Hour)},
		} {
			b := b
			if err := tx.InsertBooking(ctx, &b); err != nil {
				return err
			}
		}
		return nil
	}))

	list, err := s.Bookings().ListPendingBefore(ctx, now.Add(-time.Hour))

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "old", list[0].ID)
}
