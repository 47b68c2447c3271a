package list_bookings

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	"github.com/oniit/e-jadwal-public-web/pkg/ptr"
)

func TestPublicProjectionKeepsScheduleFields(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	submitted := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)

	resp := FromDomainBookings([]*domain.Booking{{
		BookingID:      "251015-AAAAA",
		Type:           domain.BookingTypeRoom,
		Window:         domain.Window{Start: day.Add(9 * time.Hour), End: day.Add(11 * time.Hour)},
		SubmittedAt:    submitted,
		UserName:       "Dinas Pendidikan",
		AssetCode:      "GD-01",
		AssetName:      "Aula Utama",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Notes:          ptr.Ptr("catatan internal"),
		Room: &domain.RoomDetails{
			ActivityName: "Rapat Koordinasi",
			BorrowedItems: []domain.BorrowedItem{
				{AssetCode: "BRG-01", AssetName: "Kursi Lipat", Quantity: 10},
			},
		},
	}})

	require.Len(t, resp.Bookings, 1)
	b := resp.Bookings[0]
	assert.Equal(t, submitted, b.SubmittedAt)
	assert.Equal(t, "Rapat Koordinasi", b.ActivityName)
	require.Len(t, b.Items, 1)
	assert.Equal(t, "Kursi Lipat", b.Items[0].AssetName)
	assert.Equal(t, 10, b.Items[0].Quantity)
}

func TestPublicProjectionRedactsRequesterDetails(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	resp := FromDomainBookings([]*domain.Booking{{
		BookingID:      "251015-AAAAA",
		Type:           domain.BookingTypeVehicle,
		Window:         domain.Window{Start: day.Add(8 * time.Hour), End: day.Add(12 * time.Hour)},
		UserName:       "Dinas Pendidikan",
		AssetCode:      "KD-01",
		AssetName:      "Bus Dinas",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Vehicle:        &domain.VehicleDetails{Destination: "Bandung"},
	}})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "Budi")
	assert.NotContains(t, string(raw), "08123456789")
	assert.NotContains(t, string(raw), "Dinas Pendidikan")
	assert.Contains(t, string(raw), "Bandung")
}
