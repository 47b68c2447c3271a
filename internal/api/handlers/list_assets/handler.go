package list_assets

import (
	"net/http"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
)

type Handler struct {
	service AssetService
	logger  Logger
}

func NewHandler(service AssetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/assets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /assets - failed to list assets: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainAssets(catalog))
}
