package create_asset

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// AssetService is the service contract of the handler.
type AssetService interface {
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
