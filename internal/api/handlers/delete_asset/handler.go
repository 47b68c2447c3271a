package delete_asset

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/assets"
)

const (
	msgAssetNotFound = "aset tidak ditemukan"
	msgAssetDeleted  = "aset berhasil dihapus"
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

// Handle DELETE /api/v1/assets/{assetCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["assetCode"]

	if err := h.service.Delete(r.Context(), code); err != nil {
		if errors.Is(err, assets.ErrAssetNotFound) {
			handlers.RespondNotFound(w, msgAssetNotFound)
			return
		}
		h.logger.Error("DELETE /assets/%s - failed to delete asset: %v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgAssetDeleted})
}
