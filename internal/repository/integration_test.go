//go:build integration

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service"
	"github.com/stpnv0/HotelBooker/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type nopPublisher struct{}

func (nopPublisher) PublishBookingEvent(context.Context, domain.BookingEvent) {}

func startPostgres(t *testing.T) *dbpg.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("hotelbooker"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer raw.Close()

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(raw, "."))

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return db
}

func newPostgresBookingService(t *testing.T, db *dbpg.DB) *service.BookingService {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return service.NewBookingService(NewBookingRepo(db), NewTransactor(db), nopPublisher{}, log)
}

func seedRoom(t *testing.T, db *dbpg.DB, seats int) string {
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
	require.NoError(t, NewRoomRepo(db).Create(context.Background(), room))
	return room.ID
}

func TestIntegration_BookingRaces(t *testing.T) {
	db := startPostgres(t)
	svc := newPostgresBookingService(t, db)
	rooms := NewRoomRepo(db)
	ctx := context.Background()

	t.Run("concurrent confirms never oversell", func(t *testing.T) {
		const seats, bookings = 2, 6
		roomID := seedRoom(t, db, seats)

		ids := make([]string, 0, bookings)
		for i := 0; i < bookings; i++ {
			b, err := svc.Book(ctx, roomID, fmt.Sprintf("guest%d@example.com", i))
			require.NoError(t, err)
			ids = append(ids, b.ID)
		}

		errs := make(chan error, bookings)
		var wg sync.WaitGroup
		for _, id := range ids {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				_, err := svc.Confirm(ctx, id)
				errs <- err
			}(id)
		}
		wg.Wait()
		close(errs)

		var ok int
		for err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrRoomFull)
		}
		assert.Equal(t, seats, ok)

		room, err := rooms.GetByID(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, 0, room.AvailableSeats)
	})

	t.Run("concurrent duplicate submissions", func(t *testing.T) {
		const attempts = 5
		roomID := seedRoom(t, db, 3)

		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Book(ctx, roomID, "same@example.com")
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
	})

	t.Run("double confirm", func(t *testing.T) {
		roomID := seedRoom(t, db, 2)
		b, err := svc.Book(ctx, roomID, "twice@example.com")
		require.NoError(t, err)

		_, err = svc.Confirm(ctx, b.ID)
		require.NoError(t, err)
		_, err = svc.Confirm(ctx, b.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)

		room, err := rooms.GetByID(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, 1, room.AvailableSeats)
	})
}
