package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	"github.com/oniit/e-jadwal-public-web/pkg/ptr"
)

func dayWindow(startHour, endHour int) domain.Window {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return domain.Window{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func roomBooking(id, assetCode, assetName string, w domain.Window) *domain.Booking {
	return &domain.Booking{
		BookingID: id,
		Type:      domain.BookingTypeRoom,
		Window:    w,
		AssetCode: assetCode,
		AssetName: assetName,
		Room:      &domain.RoomDetails{},
	}
}

func vehicleBooking(id, assetCode, assetName string, w domain.Window, driverID int64, driverName string) *domain.Booking {
	return &domain.Booking{
		BookingID: id,
		Type:      domain.BookingTypeVehicle,
		Window:    w,
		AssetCode: assetCode,
		AssetName: assetName,
		Vehicle: &domain.VehicleDetails{
			Destination: "Bandung",
			DriverID:    ptr.Ptr(driverID),
			DriverName:  ptr.Ptr(driverName),
		},
	}
}

func TestFindConflictAssetCollision(t *testing.T) {
	confirmed := []*domain.Booking{
		roomBooking("251015-AAAAA", "GD-01", "Aula Utama", dayWindow(7, 16)),
	}

	err := FindConflict(Proposal{
		Window:    dayWindow(9, 11),
		Type:      domain.BookingTypeRoom,
		AssetCode: "GD-01",
	}, confirmed)

	var conflict *AssetConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "GD-01", conflict.AssetCode)
	assert.Contains(t, conflict.Error(), "Aula Utama")
}

func TestFindConflictAdjacentWindowIsFree(t *testing.T) {
	confirmed := []*domain.Booking{
		roomBooking("251015-AAAAA", "GD-01", "Aula Utama", dayWindow(7, 16)),
	}

	// Starts exactly when the existing booking ends: no overlap.
	err := FindConflict(Proposal{
		Window:    dayWindow(16, 17),
		Type:      domain.BookingTypeRoom,
		AssetCode: "GD-01",
	}, confirmed)
	assert.NoError(t, err)
}

func TestFindConflictDifferentAssetIsFree(t *testing.T) {
	confirmed := []*domain.Booking{
		roomBooking("251015-AAAAA", "GD-01", "Aula Utama", dayWindow(7, 16)),
	}

	err := FindConflict(Proposal{
		Window:    dayWindow(9, 11),
		Type:      domain.BookingTypeRoom,
		AssetCode: "GD-02",
	}, confirmed)
	assert.NoError(t, err)
}

func TestFindConflictDriverCollision(t *testing.T) {
	confirmed := []*domain.Booking{
		vehicleBooking("251015-AAAAA", "KD-01", "Bus Dinas", dayWindow(8, 12), 7, "Pak Jono"),
	}

	// Different vehicle, same driver.
	err := FindConflict(Proposal{
		Window:    dayWindow(10, 14),
		Type:      domain.BookingTypeVehicle,
		AssetCode: "KD-02",
		DriverID:  ptr.Ptr(int64(7)),
	}, confirmed)

	var conflict *DriverConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(7), conflict.DriverID)
	assert.Contains(t, conflict.Error(), "Pak Jono")
}

func TestFindConflictAssetTakesPriorityOverDriver(t *testing.T) {
	confirmed := []*domain.Booking{
		// Same driver, different vehicle.
		vehicleBooking("251015-AAAAA", "KD-02", "Mobil Operasional", dayWindow(8, 12), 7, "Pak Jono"),
		// Same vehicle, different driver.
		vehicleBooking("251015-BBBBB", "KD-01", "Bus Dinas", dayWindow(8, 12), 9, "Bu Sri"),
	}

	err := FindConflict(Proposal{
		Window:    dayWindow(9, 11),
		Type:      domain.BookingTypeVehicle,
		AssetCode: "KD-01",
		DriverID:  ptr.Ptr(int64(7)),
	}, confirmed)

	var conflict *AssetConflictError
	require.ErrorAs(t, err, &conflict, "asset conflict wins over driver conflict")
	assert.Equal(t, "KD-01", conflict.AssetCode)
}

func TestFindConflictDriverIgnoredForRoomProposals(t *testing.T) {
	confirmed := []*domain.Booking{
		vehicleBooking("251015-AAAAA", "KD-01", "Bus Dinas", dayWindow(8, 12), 7, "Pak Jono"),
	}

	err := FindConflict(Proposal{
		Window:    dayWindow(9, 11),
		Type:      domain.BookingTypeRoom,
		AssetCode: "GD-01",
		DriverID:  ptr.Ptr(int64(7)),
	}, confirmed)
	assert.NoError(t, err)
}

func TestFindConflictExcludesOwnBooking(t *testing.T) {
	confirmed := []*domain.Booking{
		roomBooking("251015-AAAAA", "GD-01", "Aula Utama", dayWindow(9, 11)),
	}

	// Rescheduling the same booking must not collide with itself.
	err := FindConflict(Proposal{
		Window:           dayWindow(10, 12),
		Type:             domain.BookingTypeRoom,
		AssetCode:        "GD-01",
		ExcludeBookingID: "251015-AAAAA",
	}, confirmed)
	assert.NoError(t, err)
}
