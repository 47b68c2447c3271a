package list_drivers

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// DriverService is the service contract of the handler.
type DriverService interface {
	List(ctx context.Context) ([]*domain.Driver, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
