package list_assets

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// AssetService is the service contract of the handler.
type AssetService interface {
	List(ctx context.Context) ([]*domain.Asset, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
