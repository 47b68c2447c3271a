package create_asset

import (
	"errors"
	"net/http"

	"github.com/oniit/e-jadwal-public-web/internal/api/handlers"
	"github.com/oniit/e-jadwal-public-web/internal/service/assets"
)

const (
	msgInvalidRequestBody = "data permintaan tidak valid"
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

// Handle POST /api/v1/assets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAssetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assets - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomainAsset())
	if err != nil {
		switch {
		case errors.Is(err, assets.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, assets.ErrCodeTaken):
			handlers.RespondConflict(w, msgCodeTaken)

		default:
			h.logger.Error("POST /assets - failed to create asset: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomainAsset(created))
}
