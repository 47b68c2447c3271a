package delete_driver

import "context"

// DriverService is the service contract of the handler.
type DriverService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
