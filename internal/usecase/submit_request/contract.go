package submit_request

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// RequestRepository persists requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
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
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
