package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return &dbpg.DB{Master: db}, mock
}

var (
	roomCols    = []string{"id", "name", "total_seats", "available_seats", "created_at", "updated_at"}
	bookingCols = []string{"id", "room_id", "requester", "status", "created_at", "updated_at"}
)

func expectRoomLock(mock sqlmock.Sqlmock, roomID string, available int) {
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1 FOR UPDATE`).
		WithArgs(roomID).
		WillReturnRows(sqlmock.NewRows(roomCols).AddRow(roomID, "Room", 2, available, now, now))
}

// --- Transactor ---

func TestTransactor_InRoom_RoomNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	tr := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1 FOR UPDATE`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(roomCols))
	mock.ExpectRollback()

	err := tr.InRoom(context.Background(), "missing", func(context.Context, ports.RoomTx) error {
		t.Fatal("unit of work must not run for a missing room")
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestTransactor_InRoom_ConfirmCommits(t *testing.T) {
	db, mock := newMockDB(t)
	tr := NewTransactor(db)
	now := time.Now()

	mock.ExpectBegin()
	expectRoomLock(mock, "r1", 1)
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1 AND room_id = \$2 FOR UPDATE`).
		WithArgs("b1", "r1").
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow("b1", "r1", "guest@example.com", "pending", now, now))
	mock.ExpectExec(`UPDATE rooms SET available_seats = available_seats - 1`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE bookings SET status = \$3`).
		WithArgs("b1", "r1", "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tr.InRoom(context.Background(), "r1", func(ctx context.Context, tx ports.RoomTx) error {
		b, err := tx.GetBooking(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, b.Status)

		require.NoError(t, tx.DecrementSeats(ctx))
		assert.Equal(t, 0, tx.Room().AvailableSeats)
		return tx.SetStatus(ctx, "b1", domain.BookingStatusConfirmed)
	})

	require.NoError(t, err)
}

func TestTransactor_DecrementSeats_NoneLeft(t *testing.T) {
	db, mock := newMockDB(t)
	tr := NewTransactor(db)

	mock.ExpectBegin()
	expectRoomLock(mock, "r1", 0)
	mock.ExpectExec(`UPDATE rooms SET available_seats = available_seats - 1`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := tr.InRoom(context.Background(), "r1", func(ctx context.Context, tx ports.RoomTx) error {
		return tx.DecrementSeats(ctx)
	})

	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestTransactor_InsertBooking_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	tr := NewTransactor(db)
	now := time.Now()

	mock.ExpectBegin()
	expectRoomLock(mock, "r1", 2)
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs("b1", "r1", "guest@example.com", "pending", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: uniqueViolation})
	mock.ExpectRollback()

	err := tr.InRoom(context.Background(), "r1", func(ctx context.Context, tx ports.RoomTx) error {
		return tx.InsertBooking(ctx, &domain.Booking{
			ID:        "b1",
			RoomID:    "r1",
			Requester: "guest@example.com",
			Status:    domain.BookingStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestTransactor_FindActive_None(t *testing.T) {
	db, mock := newMockDB(t)
	tr := NewTransactor(db)

	mock.ExpectBegin()
	expectRoomLock(mock, "r1", 2)
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE room_id = \$1 AND requester = \$2 AND status = ANY\(\$3\)`).
		WithArgs("r1", "guest@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(bookingCols))
	mock.ExpectCommit()

	err := tr.InRoom(context.Background(), "r1", func(ctx context.Context, tx ports.RoomTx) error {
		_, err := tx.FindActive(ctx, "guest@example.com")
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
		return nil
	})

	require.NoError(t, err)
}

func TestTransactor_DeleteBooking_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	tr := NewTransactor(db)

	mock.ExpectBegin()
	expectRoomLock(mock, "r1", 2)
	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1 AND room_id = \$2`).
		WithArgs("b1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := tr.InRoom(context.Background(), "r1", func(ctx context.Context, tx ports.RoomTx) error {
		return tx.DeleteBooking(ctx, "b1")
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestTransactor_InRoom_FnErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	tr := NewTransactor(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	expectRoomLock(mock, "r1", 2)
	mock.ExpectRollback()

	err := tr.InRoom(context.Background(), "r1", func(context.Context, ports.RoomTx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

// --- Rooms ---

func TestRoomRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(roomCols).AddRow("r1", "Deluxe", 3, 2, now, now))

	room, err := repo.GetByID(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "Deluxe", room.Name)
	assert.Equal(t, 3, room.TotalSeats)
	assert.Equal(t, 2, room.AvailableSeats)
}

func TestRoomRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(roomCols))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoomRepo(db)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO rooms`).
		WithArgs("r1", "Deluxe", 3, 3, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Room{
		ID: "r1", Name: "Deluxe", TotalSeats: 3, AvailableSeats: 3, CreatedAt: now, UpdatedAt: now,
	})

	require.NoError(t, err)
}

// --- Bookings ---

func TestBookingRepository_ListByRequester(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE requester = \$1 ORDER BY created_at DESC`).
		WithArgs("guest@example.com").
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow("b2", "r2", "guest@example.com", "confirmed", now, now).
			AddRow("b1", "r1", "guest@example.com", "cancelled", now.Add(-time.Hour), now))

	list, err := repo.ListByRequester(context.Background(), "guest@example.com")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.BookingStatusConfirmed, list[0].Status)
	assert.Equal(t, domain.BookingStatusCancelled, list[1].Status)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingCols))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_ListPendingBefore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	cutoff := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE status = \$1 AND created_at < \$2`).
		WithArgs("pending", cutoff).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow("b1", "r1", "guest@example.com", "pending", cutoff.Add(-time.Hour), cutoff))

	list, err := repo.ListPendingBefore(context.Background(), cutoff)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b1", list[0].ID)
}
