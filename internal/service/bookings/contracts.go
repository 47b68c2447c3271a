package bookings

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// BookingRepository is the storage contract of the service.
type BookingRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
