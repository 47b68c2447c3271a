package create_booking

import (
	"context"

	createBooking "github.com/oniit/e-jadwal-public-web/internal/usecase/create_booking"
)

// CreateBookingUseCase is the use case contract of the handler.
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
