package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	bookingRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/booking"
)

// Service handles booking reads and removal. Creation and rewriting run the
// full conflict pipeline and live in their own use cases.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the booking service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByCode fetches a booking by its public code, case-insensitively.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	s.logger.Info("GetByCode: fetching booking %s", code)

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByCode: booking %s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for booking %s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return booking, nil
}

// List returns all bookings ordered by window start, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return bookings, nil
}

// Delete removes the booking with the given code. The freed window becomes
// available immediately.
func (s *Service) Delete(ctx context.Context, code string) error {
	s.logger.Info("Delete: deleting booking %s", code)

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking %s not found", code)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking %s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, booking.ID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking %s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking %s (id=%d)", booking.BookingID, booking.ID)
	return nil
}
