package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	updateBooking "github.com/oniit/e-jadwal-public-web/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody   = "data permintaan tidak valid"
	msgInvalidTimeRange     = "waktu selesai harus setelah waktu mulai"
	msgOutsideBusinessHours = "peminjaman gedung hanya dapat dilakukan pada jam kerja"
	msgBookingNotFound      = "booking tidak ditemukan"
	msgAssetNotFound        = "aset tidak ditemukan"
	msgAssetKindMismatch    = "jenis aset tidak sesuai dengan jenis peminjaman"
	msgDriverNotFound       = "supir tidak ditemukan"
	msgAssetConflict        = "aset sudah dibooking pada rentang waktu tersebut"
	msgDriverConflict       = "supir sudah bertugas pada rentang waktu tersebut"
	msgItemUnavailable      = "barang tidak tersedia"
	msgInsufficientStock    = "jumlah barang melebihi stok yang tersedia"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%s - invalid request body: %v", code, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(code))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, updateBooking.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateBooking.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, updateBooking.ErrAssetKindMismatch):
			handlers.RespondBadRequest(w, msgAssetKindMismatch)

		case errors.Is(err, updateBooking.ErrDriverNotFound):
			handlers.RespondNotFound(w, msgDriverNotFound)

		case errors.Is(err, updateBooking.ErrAssetConflict):
			handlers.RespondConflict(w, msgAssetConflict)

		case errors.Is(err, updateBooking.ErrDriverConflict):
			handlers.RespondConflict(w, msgDriverConflict)

		case errors.Is(err, updateBooking.ErrItemUnavailable):
			handlers.RespondConflict(w, msgItemUnavailable)

		case errors.Is(err, updateBooking.ErrInsufficientStock):
			handlers.RespondConflict(w, msgInsufficientStock)

		default:
			h.logger.Error("PUT /bookings/%s - failed to update booking: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
