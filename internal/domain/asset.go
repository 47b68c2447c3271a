package domain

import "time"

// AssetKind classifies a catalog entry. The storage values keep the
// vocabulary of the original scheduling system: gedung (building/room),
// kendaraan (vehicle), barang (countable item).
type AssetKind string

const (
	AssetKindRoom    AssetKind = "gedung"
	AssetKindVehicle AssetKind = "kendaraan"
	AssetKindItem    AssetKind = "barang"
)

// ValidAssetKind reports whether k is one of the catalog kinds.
func ValidAssetKind(k AssetKind) bool {
	return k == AssetKindRoom || k == AssetKindVehicle || k == AssetKindItem
}

// Asset is a bookable catalog entry. Bookings reference assets by code, not
// by row identity, so codes are unique within the catalog.
type Asset struct {
	ID   int64
	Code string
	Name string
	Kind AssetKind

	// Capacity is the number of simultaneously available units.
	// Meaningful only for countable items; zero otherwise.
	Capacity int

	Detail *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCountable reports whether the asset is a countable item with finite stock.
func (a *Asset) IsCountable() bool {
	return a.Kind == AssetKindItem
}

// Exclusive reports whether at most one confirmed booking may hold the asset
// at any instant.
func (a *Asset) Exclusive() bool {
	return a.Kind == AssetKindRoom || a.Kind == AssetKindVehicle
}
