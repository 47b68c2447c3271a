package assets

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// AssetRepository is the storage contract of the service.
type AssetRepository interface {
	Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	GetByCode(ctx context.Context, code string) (*domain.Asset, error)
	List(ctx context.Context) ([]*domain.Asset, error)
	Update(ctx context.Context, a *domain.Asset) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
