package update_booking

import (
	"context"

	updateBooking "github.com/oniit/e-jadwal-public-web/internal/usecase/update_booking"
)

// UpdateBookingUseCase is the use case contract of the handler.
type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
