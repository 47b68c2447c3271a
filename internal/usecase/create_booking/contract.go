package create_booking

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// BookingRepository persists bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, w domain.Window) ([]*domain.Booking, error)
}

// AssetRepository reads the asset catalog.
type AssetRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Asset, error)
	GetCountableByCodes(ctx context.Context, codes []string) (map[string]*domain.Asset, error)
}

// DriverRepository reads the driver directory.
type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
}

// HoursValidator checks a window against the configured daily hours.
type HoursValidator interface {
	Validate(w domain.Window) error
}

// TransactionManager runs a function inside a managed transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
