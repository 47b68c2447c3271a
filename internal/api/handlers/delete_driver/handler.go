package delete_driver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/drivers"
)

const (
	msgInvalidDriverID = "id supir tidak valid"
	msgDriverNotFound  = "supir tidak ditemukan"
	msgDriverDeleted   = "supir berhasil dihapus"
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

// Handle DELETE /api/v1/drivers/{driverId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["driverId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, drivers.ErrDriverNotFound) {
			handlers.RespondNotFound(w, msgDriverNotFound)
			return
		}
		h.logger.Error("DELETE /drivers/%d - failed to delete driver: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgDriverDeleted})
}
