package update_driver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/drivers"
)

const (
	msgInvalidRequestBody = "data permintaan tidak valid"
	msgInvalidDriverID    = "id supir tidak valid"
	msgDriverNotFound     = "supir tidak ditemukan"
	msgCodeTaken          = "kode supir sudah digunakan"
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

// Handle PUT /api/v1/drivers/{driverId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["driverId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return
	}

	var req UpdateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drivers/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToDomainDriver())
	if err != nil {
		switch {
		case errors.Is(err, drivers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, drivers.ErrDriverNotFound):
			handlers.RespondNotFound(w, msgDriverNotFound)

		case errors.Is(err, drivers.ErrCodeTaken):
			handlers.RespondConflict(w, msgCodeTaken)

		default:
			h.logger.Error("PUT /drivers/%d - failed to update driver: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainDriver(updated))
}
