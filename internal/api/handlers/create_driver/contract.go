package create_driver

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// DriverService is the service contract of the handler.
type DriverService interface {
	Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
