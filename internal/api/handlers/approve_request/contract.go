package approve_request

import (
	"context"

	approveRequest "github.com/oniit/e-jadwal-public-web/internal/usecase/approve_request"
)

// ApproveRequestUseCase is the use case contract of the handler.
type ApproveRequestUseCase interface {
	Execute(ctx context.Context, req *approveRequest.Request) (*approveRequest.Response, error)
}

// Logger is the logging contract of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
