package delete_asset

import "context"

// AssetService is the service contract of the handler.
type AssetService interface {
	Delete(ctx context.Context, code string) error
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
