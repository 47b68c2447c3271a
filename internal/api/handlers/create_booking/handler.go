package create_booking

import (
	"errors"
	"net/http"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	createBooking "github.com/oniit/e-jadwal-public-web/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "data permintaan tidak valid"
	msgInvalidTimeRange     = "waktu selesai harus setelah waktu mulai"
	msgOutsideBusinessHours = "peminjaman gedung hanya dapat dilakukan pada jam kerja"
	msgAssetNotFound        = "aset tidak ditemukan"
	msgAssetKindMismatch    = "jenis aset tidak sesuai dengan jenis peminjaman"
	msgDriverNotFound       = "supir tidak ditemukan"
	msgAssetConflict        = "aset sudah dibooking pada rentang waktu tersebut"
	msgDriverConflict       = "supir sudah bertugas pada rentang waktu tersebut"
	msgItemUnavailable      = "barang tidak tersedia"
	msgInsufficientStock    = "jumlah barang melebihi stok yang tersedia"
	msgCodeTaken            = "kode booking sudah digunakan"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, createBooking.ErrAssetKindMismatch):
			handlers.RespondBadRequest(w, msgAssetKindMismatch)

		case errors.Is(err, createBooking.ErrDriverNotFound):
			handlers.RespondNotFound(w, msgDriverNotFound)

		case errors.Is(err, createBooking.ErrAssetConflict):
			handlers.RespondConflict(w, msgAssetConflict)

		case errors.Is(err, createBooking.ErrDriverConflict):
			handlers.RespondConflict(w, msgDriverConflict)

		case errors.Is(err, createBooking.ErrItemUnavailable):
			handlers.RespondConflict(w, msgItemUnavailable)

		case errors.Is(err, createBooking.ErrInsufficientStock):
			handlers.RespondConflict(w, msgInsufficientStock)

		case errors.Is(err, createBooking.ErrCodeTaken):
			handlers.RespondConflict(w, msgCodeTaken)

		default:
			h.logger.Error("POST /bookings - failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
