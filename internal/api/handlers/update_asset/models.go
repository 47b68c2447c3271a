package update_asset

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// UpdateAssetRequest is the HTTP payload for rewriting a catalog entry.
type UpdateAssetRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Capacity int     `json:"capacity,omitempty"`
	Detail   *string `json:"detail,omitempty"`
}

// ToDomainAsset converts the HTTP payload into the domain model.
func (r *UpdateAssetRequest) ToDomainAsset() *domain.Asset {
	return &domain.Asset{
		Code:     r.Code,
		Name:     r.Name,
		Kind:     domain.AssetKind(r.Kind),
		Capacity: r.Capacity,
		Detail:   r.Detail,
	}
}

// AssetResponse is the HTTP representation of the rewritten entry.
type AssetResponse struct {
	ID       int64   `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Capacity int     `json:"capacity,omitempty"`
	Detail   *string `json:"detail,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomainAsset converts an asset into the HTTP response.
func FromDomainAsset(a *domain.Asset) *AssetResponse {
	return &AssetResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Kind:      string(a.Kind),
		Capacity:  a.Capacity,
		Detail:    a.Detail,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
