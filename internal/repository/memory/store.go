// Package memory is an in-process store used for local runs and tests.
// Each room has its own mutex; writes made inside InRoom are staged and applied
// under the store lock only when the unit of work succeeds.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

type Store struct {
	mu       sync.RWMutex
	rooms    map[string]domain.Room
	bookings map[string]domain.Booking

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func New() *Store {
	return &Store{
		rooms:    make(map[string]domain.Room),
		bookings: make(map[string]domain.Booking),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *Store) Rooms() *RoomRepository {
	return &RoomRepository{s: s}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{s: s}
}

// roomLock returns the mutex of a stored room. Unknown ids get no lock, so the
// lock table never outgrows the room table.
func (s *Store) roomLock(roomID string) (*sync.Mutex, bool) {
	s.mu.RLock()
	_, exists := s.rooms[roomID]
	s.mu.RUnlock()
	if !exists {
		return nil, false
	}

	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[roomID] = l
	}
	return l, true
}

func (s *Store) InRoom(ctx context.Context, roomID string, fn func(ctx context.Context, tx ports.RoomTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l, ok := s.roomLock(roomID)
	if !ok {
		return domain.ErrRoomNotFound
	}
	l.Lock()
	defer l.Unlock()

	s.mu.RLock()
	room, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrRoomNotFound
	}

	tx := &roomTx{
		s:      s,
		room:   room,
		staged: make(map[string]*domain.Booking),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	tx.commit()
	return nil
}

type roomTx struct {
	s         *Store
	room      domain.Room
	roomDirty bool
	// nil value marks a deletion
	staged map[string]*domain.Booking
}

func (t *roomTx) Room() *domain.Room {
	r := t.room
	return &r
}

func (t *roomTx) lookup(id string) (domain.Booking, bool) {
	if b, ok := t.staged[id]; ok {
		if b == nil {
			return domain.Booking{}, false
		}
		return *b, true
	}

	t.s.mu.RLock()
	b, ok := t.s.bookings[id]
	t.s.mu.RUnlock()
	if !ok || b.RoomID != t.room.ID {
		return domain.Booking{}, false
	}
	return b, true
}

func (t *roomTx) roomBookings() map[string]domain.Booking {
	res := make(map[string]domain.Booking)

	t.s.mu.RLock()
	for id, b := range t.s.bookings {
		if b.RoomID == t.room.ID {
			res[id] = b
		}
	}
	t.s.mu.RUnlock()

	for id, b := range t.staged {
		if b == nil {
			delete(res, id)
			continue
		}
		res[id] = *b
	}
	return res
}

func (t *roomTx) FindActive(_ context.Context, requester string) (*domain.Booking, error) {
	for _, b := range t.roomBookings() {
		if b.Requester == requester && b.Status.Active() {
			return &b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (t *roomTx) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := t.lookup(id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (t *roomTx) InsertBooking(_ context.Context, b *domain.Booking) error {
	if b.RoomID != t.room.ID {
		return fmt.Errorf("insert booking: room %s is not locked", b.RoomID)
	}
	if _, exists := t.lookup(b.ID); exists {
		return fmt.Errorf("insert booking: duplicate id %s", b.ID)
	}

	cp := *b
	t.staged[b.ID] = &cp
	return nil
}

func (t *roomTx) DecrementSeats(_ context.Context) error {
	if t.room.AvailableSeats <= 0 {
		return domain.ErrRoomFull
	}

	t.room.AvailableSeats--
	t.room.UpdatedAt = time.Now().UTC()
	t.roomDirty = true
	return nil
}

func (t *roomTx) SetStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := t.lookup(id)
	if !ok {
		return domain.ErrBookingNotFound
	}

	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	t.staged[id] = &b
	return nil
}

func (t *roomTx) DeleteBooking(_ context.Context, id string) error {
	if _, ok := t.lookup(id); !ok {
		return domain.ErrBookingNotFound
	}

	t.staged[id] = nil
	return nil
}

func (t *roomTx) commit() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.roomDirty {
		t.s.rooms[t.room.ID] = t.room
	}
	for id, b := range t.staged {
		if b == nil {
			delete(t.s.bookings, id)
			continue
		}
		t.s.bookings[id] = *b
	}
}

type RoomRepository struct {
	s *Store
}

func (r *RoomRepository) Create(_ context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.rooms[room.ID]; exists {
		return fmt.Errorf("insert room: duplicate id %s", room.ID)
	}
	r.s.rooms[room.ID] = *room
	return nil
}

func (r *RoomRepository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return &room, nil
}

func (r *RoomRepository) List(_ context.Context) ([]*domain.Room, error) {
	r.s.mu.RLock()
	res := make([]*domain.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		room := room
		res = append(res, &room)
	}
	r.s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) ListByRequester(_ context.Context, requester string) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool {
		return b.Requester == requester
	}), nil
}

func (r *BookingRepository) ListPendingBefore(_ context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool {
		return b.Status == domain.BookingStatusPending && b.CreatedAt.Before(cutoff)
	}), nil
}

func (r *BookingRepository) filter(keep func(b domain.Booking) bool) []*domain.Booking {
	r.s.mu.RLock()
	var res []*domain.Booking
	for _, b := range r.s.bookings {
		if keep(b) {
			b := b
			res = append(res, &b)
		}
	}
	r.s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}
