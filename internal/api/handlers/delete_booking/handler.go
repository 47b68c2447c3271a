package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/bookings"
)

const (
	msgBookingNotFound = "booking tidak ditemukan"
	msgBookingDeleted  = "booking berhasil dihapus"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["bookingId"]

	if err := h.service.Delete(r.Context(), code); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/%s - failed to delete booking: %v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgBookingDeleted})
}
