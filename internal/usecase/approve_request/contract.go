package approve_request

import (
	"context"
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// RequestRepository reads and transitions requests.
type RequestRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Request, error)
	MarkApproved(ctx context.Context, id int64, approvedBy string, approvedAt time.Time, bookingID string) error
}

// BookingRepository persists the booking materialized on approval.
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

// TransactionManager runs a function inside a managed transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the approval timestamp.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
