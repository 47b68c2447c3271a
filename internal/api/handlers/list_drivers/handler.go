package list_drivers

import (
	"net/http"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
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

// Handle GET /api/v1/drivers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	directory, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /drivers - failed to list drivers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainDrivers(directory))
}
