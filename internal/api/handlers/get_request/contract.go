package get_request

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// RequestService is the service contract of the handler.
type RequestService interface {
	GetByCode(ctx context.Context, code string) (*domain.Request, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
