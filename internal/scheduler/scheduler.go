package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingPurger interface {
	PurgeExpired(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
}

// Scheduler removes pending bookings that were never confirmed within pendingTTL.
type Scheduler struct {
	bookingService bookingPurger
	interval       time.Duration
	pendingTTL     time.Duration
	logger         logger.Logger
	now            func() time.Time
}

func New(
	bookingService bookingPurger,
	interval time.Duration,
	pendingTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		pendingTTL:     pendingTTL,
		logger:         logger,
		now:            time.Now,
	}
}

// Start sweeps once immediately and then on every interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("pending_ttl", s.pendingTTL),
	)
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cutoff := s.now().UTC().Add(-s.pendingTTL)

	purged, err := s.bookingService.PurgeExpired(ctx, cutoff)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("failed to purge expired bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range purged {
		s.logger.Info("pending booking expired",
			logger.String("booking_id", b.ID),
			logger.String("room_id", b.RoomID),
			logger.String("requester", b.Requester),
		)
	}
}
