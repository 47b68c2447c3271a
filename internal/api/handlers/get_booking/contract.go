package get_booking

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// BookingService is the service contract of the handler.
type BookingService interface {
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
