package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_UsesPendingTTLCutoff(t *testing.T) {
	purger := mocks.NewMockBookingPurger(t)
	s := New(purger, time.Minute, 15*time.Minute, newTestLogger(t))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	purger.EXPECT().PurgeExpired(mock.Anything, now.Add(-15*time.Minute)).
		Return([]*domain.Booking{{ID: "b1", RoomID: "r1", Requester: "guest@example.com"}}, nil).
		Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	purger := mocks.NewMockBookingPurger(t)
	s := New(purger, time.Minute, time.Minute, newTestLogger(t))

	purger.EXPECT().PurgeExpired(mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

	assert.NotPanics(t, func() { s.tick(context.Background()) })
}

func TestScheduler_Start_Ticks(t *testing.T) {
	purger := mocks.NewMockBookingPurger(t)
	s := New(purger, 20*time.Millisecond, time.Minute, newTestLogger(t))

	purger.EXPECT().PurgeExpired(mock.Anything, mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	// initial sweep plus at least two ticks
	assert.GreaterOrEqual(t, len(purger.Calls), 3)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	purger := mocks.NewMockBookingPurger(t)
	s := New(purger, time.Hour, time.Minute, newTestLogger(t))

	purger.EXPECT().PurgeExpired(mock.Anything, mock.Anything).Return(nil, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
