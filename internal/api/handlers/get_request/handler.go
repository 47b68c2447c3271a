package get_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/requests"
)

const msgRequestNotFound = "pengajuan tidak ditemukan"

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["requestId"]

	req, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, requests.ErrRequestNotFound) {
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("GET /requests/%s - failed to get request: %v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainRequest(req))
}
