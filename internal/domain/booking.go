package domain

import "time"

// BookingType is the allocation kind of a booking or request.
type BookingType string

const (
	BookingTypeRoom    BookingType = "gedung"
	BookingTypeVehicle BookingType = "kendaraan"
)

// ValidBookingType reports whether t is a known allocation kind.
func ValidBookingType(t BookingType) bool {
	return t == BookingTypeRoom || t == BookingTypeVehicle
}

// AssetKind returns the catalog kind the allocation's target asset must have.
func (t BookingType) AssetKind() AssetKind {
	if t == BookingTypeVehicle {
		return AssetKindVehicle
	}
	return AssetKindRoom
}

// BorrowedItem is one line of countable-item consumption on a room
// allocation. AssetName is snapshotted from the catalog when the line is
// stored, so later catalog renames do not change history.
type BorrowedItem struct {
	AssetCode string
	AssetName string
	Quantity  int
}

// RoomDetails is the room-specific payload of an allocation.
type RoomDetails struct {
	ActivityName  string
	BorrowedItems []BorrowedItem
}

// VehicleDetails is the vehicle-specific payload of an allocation.
// DriverName is denormalized from the driver directory at confirmation time.
type VehicleDetails struct {
	Destination string
	DriverID    *int64
	DriverName  *string
}

// Booking is a confirmed allocation. It participates in conflict and
// capacity checks for the whole of its window. Exactly one of Room or
// Vehicle is set, matching Type.
type Booking struct {
	ID        int64
	BookingID string
	Type      BookingType
	Window    Window

	SubmittedAt time.Time

	UserName  string
	AssetCode string
	// AssetName is snapshotted from the catalog at creation time.
	AssetName      string
	PersonInCharge string
	PICPhone       string
	Notes          *string

	Room    *RoomDetails
	Vehicle *VehicleDetails

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Items returns the borrowed-item lines, or nil for vehicle bookings.
func (b *Booking) Items() []BorrowedItem {
	if b.Room == nil {
		return nil
	}
	return b.Room.BorrowedItems
}

// DriverID returns the assigned driver reference, or nil.
func (b *Booking) DriverID() *int64 {
	if b.Vehicle == nil {
		return nil
	}
	return b.Vehicle.DriverID
}
