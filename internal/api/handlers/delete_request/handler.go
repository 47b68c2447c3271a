package delete_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/requests"
)

const (
	msgRequestNotFound = "pengajuan tidak ditemukan"
	msgRequestDeleted  = "pengajuan berhasil dihapus"
)

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

// Handle DELETE /api/v1/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["requestId"]

	if err := h.service.Delete(r.Context(), code); err != nil {
		if errors.Is(err, requests.ErrRequestNotFound) {
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("DELETE /requests/%s - failed to delete request: %v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgRequestDeleted})
}
