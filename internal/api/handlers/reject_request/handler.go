package reject_request

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/requests"
)

const (
	msgInvalidRequestBody = "data permintaan tidak valid"
	msgRequestNotFound    = "pengajuan tidak ditemukan"
	msgRequestNotPending  = "pengajuan sudah diproses"
)

// RejectRequestRequest is the HTTP payload for rejecting a request.
type RejectRequestRequest struct {
	Reason *string `json:"reason,omitempty"`
}

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

// Handle POST /api/v1/requests/{requestId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["requestId"]

	// The body is optional; it only carries the rejection reason.
	var req RejectRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /requests/%s/reject - invalid request body: %v", code, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rejected, err := h.service.Reject(r.Context(), code, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, requests.ErrRequestNotPending):
			handlers.RespondBadRequest(w, msgRequestNotPending)

		default:
			h.logger.Error("POST /requests/%s/reject - failed to reject request: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainRequest(rejected))
}
