package update_asset

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/assets"
)

const (
	msgInvalidRequestBody = "data permintaan tidak valid"
	msgAssetNotFound      = "aset tidak ditemukan"
	msgCodeTaken          = "kode aset sudah digunakan"
)

type Handler struct {
	service AssetService
	logger  Logger
}

func NewHandler(service AssetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/assets/{assetCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["assetCode"]

	var req UpdateAssetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /assets/%s - invalid request body: %v", code, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), code, req.ToDomainAsset())
	if err != nil {
		switch {
		case errors.Is(err, assets.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, assets.ErrAssetNotFound):
			handlers.RespondNotFound(w, msgAssetNotFound)

		case errors.Is(err, assets.ErrCodeTaken):
			handlers.RespondConflict(w, msgCodeTaken)

		default:
			h.logger.Error("PUT /assets/%s - failed to update asset: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainAsset(updated))
}
