package requests

import (
	"context"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// RequestRepository is the storage contract of the service.
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	GetByCode(ctx context.Context, code string) (*domain.Request, error)
	List(ctx context.Context) ([]*domain.Request, error)
	MarkRejected(ctx context.Context, id int64, reason *string) error
	Delete(ctx context.Context, id int64) error
}

// TransactionManager runs a function inside a managed transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
