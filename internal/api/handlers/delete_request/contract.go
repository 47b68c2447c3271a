package delete_request

import "context"

// RequestService is the service contract of the handler.
type RequestService interface {
	Delete(ctx context.Context, code string) error
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
