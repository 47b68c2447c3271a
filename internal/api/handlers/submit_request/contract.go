package submit_request

import (
	"context"

	submitRequest "github.com/oniit/e-jadwal-public-web/internal/usecase/submit_request"
)

// SubmitRequestUseCase is the use case contract of the handler.
type SubmitRequestUseCase interface {
	Execute(ctx context.Context, req *submitRequest.Request) (*submitRequest.Response, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
