package approve_request

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/api/middleware"
	approveRequest "github.com/oniit/e-jadwal-public-web/internal/usecase/approve_request"
)

const (
	msgInvalidRequestBody = "data permintaan tidak valid"
	msgRequestNotFound    = "pengajuan tidak ditemukan"
	msgRequestNotPending  = "pengajuan sudah diproses"
	msgAssetNotFound      = "aset tidak ditemukan"
	msgDriverNotFound     = "supir tidak ditemukan"
	msgAssetConflict      = "aset sudah dibooking pada rentang waktu tersebut"
	msgDriverConflict     = "supir sudah bertugas pada rentang waktu tersebut"
	msgItemUnavailable    = "barang tidak tersedia"
	msgInsufficientStock  = "jumlah barang melebihi stok yang tersedia"
)

type Handler struct {
	useCase ApproveRequestUseCase
	logger  Logger
}

func NewHandler(useCase ApproveRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["requestId"]

	// The body is optional; it only carries the driver override.
	var req ApproveRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /requests/%s/approve - invalid request body: %v", code, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveRequest.Request{
		RequestID:  code,
		ApprovedBy: middleware.AdminUser(r.Context()),
		DriverID:   req.DriverID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, approveRequest.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, approveRequest.ErrRequestNotPending):
			handlers.RespondBadRequest(w, msgRequestNotPending)

		case errors.Is(err, approveRequest.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, approveRequest.ErrDriverNotFound):
			handlers.RespondNotFound(w, msgDriverNotFound)

		case errors.Is(err, approveRequest.ErrAssetConflict):
			handlers.RespondConflict(w, msgAssetConflict)

		case errors.Is(err, approveRequest.ErrDriverConflict):
			handlers.RespondConflict(w, msgDriverConflict)

		case errors.Is(err, approveRequest.ErrItemUnavailable):
			handlers.RespondConflict(w, msgItemUnavailable)

		case errors.Is(err, approveRequest.ErrInsufficientStock):
			handlers.RespondConflict(w, msgInsufficientStock)

		default:
			h.logger.Error("POST /requests/%s/approve - failed to approve request: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
