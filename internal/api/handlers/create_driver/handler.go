package create_driver

import (
	"errors"
	"net/http"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/drivers"
)

const (
	msgInvalidRequestBody = "data permintaan tidak valid"
	msgCodeTaken          = "kode supir sudah digunakan"
)

type Handler struct {
	service DriverService
	logger  Logger
}

func NewHandler(service DriverService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drivers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drivers - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomainDriver())
	if err != nil {
		switch {
		case errors.Is(err, drivers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, drivers.ErrCodeTaken):
			handlers.RespondConflict(w, msgCodeTaken)

		default:
			h.logger.Error("POST /drivers - failed to create driver: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomainDriver(created))
}
