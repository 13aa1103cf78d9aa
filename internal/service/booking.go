package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	tx          ports.Transactor
	publisher   ports.BookingPublisher
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	tx ports.Transactor,
	publisher ports.BookingPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		tx:          tx,
		publisher:   publisher,
		logger:      logger,
	}
}

// Book admits a new pending booking. Seats are checked here but only consumed by Confirm.
func (s *BookingService) Book(ctx context.Context, roomID, requester string) (*domain.Booking, error) {
	requester = strings.TrimSpace(requester)
	if requester == "" {
		return nil, fmt.Errorf("%w: requester_identity is required", domain.ErrValidation)
	}
	if addr, err := mail.ParseAddress(requester); err != nil || addr.Address != requester {
		return nil, fmt.Errorf("%w: requester_identity must be a bare email address", domain.ErrValidation)
	}
	if roomID == "" {
		return nil, fmt.Errorf("%w: room_id is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		RoomID:    roomID,
		Requester: requester,
		Status:    domain.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.InRoom(ctx, roomID, func(ctx context.Context, tx ports.RoomTx) error {
		_, err := tx.FindActive(ctx, requester)
		if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
			return fmt.Errorf("find active booking: %w", err)
		}
		duplicate := err == nil

		if !tx.Room().HasFreeSeat() {
			return domain.ErrRoomFull
		}
		if duplicate {
			return domain.ErrAlreadyBooked
		}

		return tx.InsertBooking(ctx, booking)
	})
	if err != nil {
		return nil, fmt.Errorf("book room: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", roomID),
		logger.String("requester", requester),
	)
	s.publish(ctx, domain.BookingCreated, booking)

	return booking, nil
}

// Confirm consumes one seat of the booking's room and marks the booking confirmed.
// Both writes happen in the same room scope or not at all.
func (s *BookingService) Confirm(ctx context.Context, bookingID string) (*domain.Booking, error) {
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var confirmed *domain.Booking
	err = s.tx.InRoom(ctx, current.RoomID, func(ctx context.Context, tx ports.RoomTx) error {
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status != domain.BookingStatusPending {
			return domain.ErrAlreadyConfirmed
		}
		if !tx.Room().HasFreeSeat() {
			return domain.ErrRoomFull
		}

		if err = tx.DecrementSeats(ctx); err != nil {
			return err
		}
		if err = tx.SetStatus(ctx, bookingID, domain.BookingStatusConfirmed); err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		b.Status = domain.BookingStatusConfirmed
		b.UpdatedAt = time.Now().UTC()
		confirmed = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", confirmed.ID),
		logger.String("room_id", confirmed.RoomID),
		logger.String("requester", confirmed.Requester),
	)
	s.publish(ctx, domain.BookingConfirmed, confirmed)

	return confirmed, nil
}

// SetStatus writes a status. Confirmation is routed through Confirm; every other
// status is a plain write that never touches inventory.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if status == domain.BookingStatusConfirmed {
		return s.Confirm(ctx, bookingID)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var updated *domain.Booking
	err = s.tx.InRoom(ctx, current.RoomID, func(ctx context.Context, tx ports.RoomTx) error {
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.Status == status {
			updated = b
			return nil
		}

		switch {
		case b.Status == domain.BookingStatusConfirmed && status == domain.BookingStatusPending:
			// a confirmed booking going back to pending could be confirmed twice
			return domain.ErrAlreadyConfirmed
		case status.Active() && !b.Status.Active():
			_, err = tx.FindActive(ctx, b.Requester)
			if err == nil {
				return domain.ErrAlreadyBooked
			}
			if !errors.Is(err, domain.ErrBookingNotFound) {
				return fmt.Errorf("find active booking: %w", err)
			}
		}

		if err = tx.SetStatus(ctx, bookingID, status); err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		b.Status = status
		b.UpdatedAt = time.Now().UTC()
		updated = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", updated.ID),
		logger.String("status", string(updated.Status)),
	)
	s.publish(ctx, domain.BookingStatusChanged, updated)

	return updated, nil
}

// Cancel removes the booking. A seat taken by a confirmed booking is not returned.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	var deleted *domain.Booking
	err = s.tx.InRoom(ctx, current.RoomID, func(ctx context.Context, tx ports.RoomTx) error {
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		deleted = b
		return tx.DeleteBooking(ctx, bookingID)
	})
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", deleted.ID),
		logger.String("room_id", deleted.RoomID),
		logger.String("status", string(deleted.Status)),
	)
	s.publish(ctx, domain.BookingDeleted, deleted)

	return nil
}

// ListByRequester returns the requester's bookings if caller is the requester.
func (s *BookingService) ListByRequester(ctx context.Context, caller, requester string) ([]*domain.Booking, error) {
	if err := CheckOwnership(caller, requester); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByRequester(ctx, requester)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

// PurgeExpired deletes pending bookings created before cutoff. Confirmed bookings
// and room inventory are left alone.
func (s *BookingService) PurgeExpired(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	candidates, err := s.bookingRepo.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expired: %w", err)
	}

	var purged []*domain.Booking
	for _, c := range candidates {
		var removed *domain.Booking
		err = s.tx.InRoom(ctx, c.RoomID, func(ctx context.Context, tx ports.RoomTx) error {
			b, err := tx.GetBooking(ctx, c.ID)
			if err != nil {
				return err
			}
			// confirmed or re-created since the scan
			if b.Status != domain.BookingStatusPending || !b.CreatedAt.Before(cutoff) {
				return nil
			}
			if err = tx.DeleteBooking(ctx, b.ID); err != nil {
				return err
			}
			removed = b
			return nil
		})
		if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Error("failed to purge expired booking",
				logger.String("booking_id", c.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if removed == nil {
			continue
		}

		purged = append(purged, removed)
		s.publish(ctx, domain.BookingDeleted, removed)
	}

	if len(purged) > 0 {
		s.logger.Info("expired pending bookings purged",
			logger.Int("count", len(purged)),
		)
	}

	return purged, nil
}

func (s *BookingService) publish(ctx context.Context, t domain.BookingEventType, b *domain.Booking) {
	event := domain.NewBookingEvent(t, b)
	go s.publisher.PublishBookingEvent(context.WithoutCancel(ctx), event)
}
