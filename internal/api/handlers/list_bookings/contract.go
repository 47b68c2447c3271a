package list_bookings

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// BookingService is the service contract of the handler.
type BookingService interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
