package drivers

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// DriverRepository is the storage contract of the service.
type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error)
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	List(ctx context.Context) ([]*domain.Driver, error)
	Update(ctx context.Context, d *domain.Driver) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
