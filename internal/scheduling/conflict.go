package scheduling

import (
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// Proposal describes an allocation to be tested against confirmed bookings.
type Proposal struct {
	Window    domain.Window
	Type      domain.BookingType
	AssetCode string

	// DriverID is checked only for vehicle proposals that carry a driver.
	DriverID *int64

	// ExcludeBookingID skips one booking code from the scan, so an edit of an
	// existing booking does not conflict with itself.
	ExcludeBookingID string
}

// AssetConflictError reports that the target asset already has a confirmed
// booking overlapping the proposed window.
type AssetConflictError struct {
	AssetCode string
	AssetName string
}

func (e *AssetConflictError) Error() string {
	return fmt.Sprintf("asset %q already booked in that window", e.AssetName)
}

// DriverConflictError reports that the requested driver is already assigned
// to a confirmed booking overlapping the proposed window.
type DriverConflictError struct {
	DriverID   int64
	DriverName string
}

func (e *DriverConflictError) Error() string {
	return fmt.Sprintf("driver %q already assigned in that window", e.DriverName)
}

// FindConflict scans confirmed bookings for an exclusivity violation and
// returns nil when the proposal is free of conflicts.
//
// Asset conflicts take priority over driver conflicts: resource identity is
// the primary key of a booking, so when both would match, the asset collision
// is the one reported.
func FindConflict(p Proposal, confirmed []*domain.Booking) error {
	var driverConflict *DriverConflictError

	checkDriver := p.Type == domain.BookingTypeVehicle && p.DriverID != nil

	for _, b := range confirmed {
		if p.ExcludeBookingID != "" && b.BookingID == p.ExcludeBookingID {
			continue
		}
		if !b.Window.Overlaps(p.Window) {
			continue
		}

		if b.AssetCode == p.AssetCode {
			return &AssetConflictError{AssetCode: b.AssetCode, AssetName: b.AssetName}
		}

		if checkDriver && driverConflict == nil {
			if id := b.DriverID(); id != nil && *id == *p.DriverID {
				name := ""
				if b.Vehicle.DriverName != nil {
					name = *b.Vehicle.DriverName
				}
				driverConflict = &DriverConflictError{DriverID: *id, DriverName: name}
			}
		}
	}

	if driverConflict != nil {
		return driverConflict
	}
	return nil
}
