package list_assets

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// AssetResponse is the HTTP representation of one catalog entry.
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

// AssetListResponse groups the catalog by kind, the way the booking forms
// consume it.
type AssetListResponse struct {
	Rooms    []AssetResponse `json:"rooms"`
	Vehicles []AssetResponse `json:"vehicles"`
	Items    []AssetResponse `json:"items"`
	Total    int             `json:"total"`
}

// FromDomainAssets converts catalog entries into the grouped response.
func FromDomainAssets(catalog []*domain.Asset) *AssetListResponse {
	resp := &AssetListResponse{
		Rooms:    make([]AssetResponse, 0),
		Vehicles: make([]AssetResponse, 0),
		Items:    make([]AssetResponse, 0),
		Total:    len(catalog),
	}

	for _, a := range catalog {
		entry := AssetResponse{
			ID:        a.ID,
			Code:      a.Code,
			Name:      a.Name,
			Kind:      string(a.Kind),
			Capacity:  a.Capacity,
			Detail:    a.Detail,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		}
		switch a.Kind {
		case domain.AssetKindRoom:
			resp.Rooms = append(resp.Rooms, entry)
		case domain.AssetKindVehicle:
			resp.Vehicles = append(resp.Vehicles, entry)
		case domain.AssetKindItem:
			resp.Items = append(resp.Items, entry)
		}
	}

	return resp
}
