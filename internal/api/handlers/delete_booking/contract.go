package delete_booking

import "context"

// BookingService is the service contract of the handler.
type BookingService interface {
	Delete(ctx context.Context, code string) error
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
