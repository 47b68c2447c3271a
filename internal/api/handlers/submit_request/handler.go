package submit_request

import (
	"errors"
	"net/http"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	submitRequest "github.com/oniit/e-jadwal-public-web/internal/usecase/submit_request"
)

const (
	msgInvalidRequestBody   = "data permintaan tidak valid"
	msgInvalidTimeRange     = "waktu selesai harus setelah waktu mulai"
	msgOutsideBusinessHours = "peminjaman gedung hanya dapat dilakukan pada jam kerja"
	msgAssetNotFound        = "aset tidak ditemukan"
	msgAssetKindMismatch    = "jenis aset tidak sesuai dengan jenis pengajuan"
	msgDriverNotFound       = "supir tidak ditemukan"
	msgItemUnavailable      = "barang tidak tersedia"
)

type Handler struct {
	useCase SubmitRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, submitRequest.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, submitRequest.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, submitRequest.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, submitRequest.ErrAssetKindMismatch):
			handlers.RespondBadRequest(w, msgAssetKindMismatch)

		case errors.Is(err, submitRequest.ErrDriverNotFound):
			handlers.RespondNotFound(w, msgDriverNotFound)

		case errors.Is(err, submitRequest.ErrItemUnavailable):
			handlers.RespondBadRequest(w, msgItemUnavailable)

		default:
			h.logger.Error("POST /requests - failed to submit request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
