package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) PublishBookingEvent(context.Context, domain.BookingEvent) {}

func newMemoryBookingService(t *testing.T) (*BookingService, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewBookingService(store.Bookings(), store, nopPublisher{}, newTestLogger(t)), store
}

func seedRoom(t *testing.T, store *memory.Store, seats int) string {
	t.Helper()
	now := time.Now().UTC()
	room := &domain.Room{
		ID:             uuid.NewString(),
		Name:           "Room",
		TotalSeats:     seats,
		AvailableSeats: seats,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, store.Rooms().Create(context.Background(), room))
	return room.ID
}

func availableSeats(t *testing.T, store *memory.Store, roomID string) int {
	t.Helper()
	room, err := store.Rooms().GetByID(context.Background(), roomID)
	require.NoError(t, err)
	return room.AvailableSeats
}

func TestBookingService_ConcurrentConfirms_NeverOversell(t *testing.T) {
	const (
		seats    = 3
		bookings = 10
	)
	svc, store := newMemoryBookingService(t)
	ctx := context.Background()
	roomID := seedRoom(t, store, seats)

	ids := make([]string, 0, bookings)
	for i := 0; i < bookings; i++ {
		b, err := svc.Book(ctx, roomID, fmt.Sprintf("guest%d@example.com", i))
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, full int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Confirm(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, domain.ErrRoomFull):
				full++
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, seats, ok)
	assert.Equal(t, bookings-seats, full)
	assert.Equal(t, 0, availableSeats(t, store, roomID))
}

func TestBookingService_DoubleConfirm(t *testing.T) {
	svc, store := newMemoryBookingService(t)
	ctx := context.Background()
	roomID := seedRoom(t, store, 5)

	b, err := svc.Book(ctx, roomID, "guest@example.com")
	require.NoError(t, err)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Confirm(ctx, b.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, already int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
		already++
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, already)
	assert.Equal(t, 4, availableSeats(t, store, roomID))
}

func TestBookingService_ConcurrentDuplicateSubmissions(t *testing.T) {
	const attempts = 8
	svc, store := newMemoryBookingService(t)
	ctx := context.Background()
	roomID := seedRoom(t, store, 2)

	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(ctx, roomID, "guest@example.com")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var accepted int
	for err := range errs {
		if err == nil {
			accepted++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	}
	assert.Equal(t, 1, accepted)

	list, err := store.Bookings().ListByRequester(ctx, "guest@example.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 2, availableSeats(t, store, roomID))
}

func TestBookingService_Scenario_SubmitConfirmResubmit(t *testing.T) {
	svc, store := newMemoryBookingService(t)
	ctx := context.Background()
	roomID := seedRoom(t, store, 2)

	b, err := svc.Book(ctx, roomID, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, 2, availableSeats(t, store, roomID))

	confirmed, err := svc.Confirm(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)
	assert.Equal(t, 1, availableSeats(t, store, roomID))

	_, err = svc.Book(ctx, roomID, "guest@example.com")
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Scenario_FullRoom(t *testing.T) {
	svc, store := newMemoryBookingService(t)
	roomID := seedRoom(t, store, 0)

	_, err := svc.Book(context.Background(), roomID, "guest@example.com")

	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestBookingService_Scenario_CancelledSlotCanBeRebooked(t *testing.T) {
	svc, store := newMemoryBookingService(t)
	ctx := context.Background()
	roomID := seedRoom(t, store, 2)

	b, err := svc.Book(ctx, roomID, "guest@example.com")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, b.ID, domain.BookingStatusCancelled)
	require.NoError(t, err)

	_, err = svc.Book(ctx, roomID, "guest@example.com")
	require.NoError(t, err)

	// reopening the old booking would make two active ones
	_, err = svc.SetStatus(ctx, b.ID, domain.BookingStatusPending)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Cancel_LeavesInventory(t *testing.T) {
	svc, store := newMemoryBookingService(t)
	ctx := context.Background()
	roomID := seedRoom(t, store, 2)

	pending, err := svc.Book(ctx, roomID, "a@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, pending.ID))

	_, err = store.Bookings().GetByID(ctx, pending.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.Equal(t, 2, availableSeats(t, store, roomID))

	confirmed, err := svc.Book(ctx, roomID, "b@example.com")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, confirmed.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, confirmed.ID))

	assert.Equal(t, 1, availableSeats(t, store, roomID))
}

func TestBookingService_PurgeExpired_KeepsConfirmed(t *testing.T) {
	svc, store := newMemoryBookingService(t)
	ctx := context.Background()
	roomID := seedRoom(t, store, 2)

	pending, err := svc.Book(ctx, roomID, "a@example.com")
	require.NoError(t, err)
	kept, err := svc.Book(ctx, roomID, "b@example.com")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, kept.ID)
	require.NoError(t, err)

	purged, err := svc.PurgeExpired(ctx, time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, purged, 1)
	assert.Equal(t, pending.ID, purged[0].ID)

	_, err = store.Bookings().GetByID(ctx, kept.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, availableSeats(t, store, roomID))
}
