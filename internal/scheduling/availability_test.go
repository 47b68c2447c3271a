package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

func itemCatalog(capacity int) map[string]*domain.Asset {
	return map[string]*domain.Asset{
		"BRG-01": {Code: "BRG-01", Name: "Kursi Lipat", Kind: domain.AssetKindItem, Capacity: capacity},
	}
}

func bookingWithItems(id string, w domain.Window, code string, qty int) *domain.Booking {
	return &domain.Booking{
		BookingID: id,
		Type:      domain.BookingTypeRoom,
		Window:    w,
		AssetCode: "GD-01",
		Room: &domain.RoomDetails{
			BorrowedItems: []domain.BorrowedItem{{AssetCode: code, AssetName: "Kursi Lipat", Quantity: qty}},
		},
	}
}

func TestCheckItemAvailabilityExceedsStock(t *testing.T) {
	confirmed := []*domain.Booking{
		bookingWithItems("251015-AAAAA", dayWindow(8, 12), "BRG-01", 6),
	}

	err := CheckItemAvailability(
		dayWindow(10, 14),
		[]domain.BorrowedItem{{AssetCode: "BRG-01", Quantity: 5}},
		confirmed,
		itemCatalog(10),
		"",
	)

	var stock *StockError
	require.ErrorAs(t, err, &stock)
	assert.Equal(t, 4, stock.Remaining)
	assert.Equal(t, "BRG-01", stock.AssetCode)
}

func TestCheckItemAvailabilityFitsExactly(t *testing.T) {
	confirmed := []*domain.Booking{
		bookingWithItems("251015-AAAAA", dayWindow(8, 12), "BRG-01", 6),
	}

	err := CheckItemAvailability(
		dayWindow(10, 14),
		[]domain.BorrowedItem{{AssetCode: "BRG-01", Quantity: 4}},
		confirmed,
		itemCatalog(10),
		"",
	)
	assert.NoError(t, err)
}

func TestCheckItemAvailabilityNonOverlappingUsageIgnored(t *testing.T) {
	confirmed := []*domain.Booking{
		// Full stock committed, but in a disjoint window.
		bookingWithItems("251015-AAAAA", dayWindow(7, 9), "BRG-01", 10),
	}

	err := CheckItemAvailability(
		dayWindow(9, 12),
		[]domain.BorrowedItem{{AssetCode: "BRG-01", Quantity: 10}},
		confirmed,
		itemCatalog(10),
		"",
	)
	assert.NoError(t, err, "touching windows do not share stock")
}

func TestCheckItemAvailabilityUnknownItem(t *testing.T) {
	err := CheckItemAvailability(
		dayWindow(9, 12),
		[]domain.BorrowedItem{{AssetCode: "BRG-99", Quantity: 1}},
		nil,
		itemCatalog(10),
		"",
	)

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "BRG-99", unavailable.AssetCode)
}

func TestCheckItemAvailabilityZeroCapacityItem(t *testing.T) {
	err := CheckItemAvailability(
		dayWindow(9, 12),
		[]domain.BorrowedItem{{AssetCode: "BRG-01", Quantity: 1}},
		nil,
		itemCatalog(0),
		"",
	)
	assert.Error(t, err)
}

func TestCheckItemAvailabilityRemainingFlooredAtZero(t *testing.T) {
	confirmed := []*domain.Booking{
		bookingWithItems("251015-AAAAA", dayWindow(8, 12), "BRG-01", 12),
	}

	err := CheckItemAvailability(
		dayWindow(10, 14),
		[]domain.BorrowedItem{{AssetCode: "BRG-01", Quantity: 1}},
		confirmed,
		itemCatalog(10),
		"",
	)

	var stock *StockError
	require.ErrorAs(t, err, &stock)
	assert.Equal(t, 0, stock.Remaining)
}

func TestCheckItemAvailabilityExcludesOwnBooking(t *testing.T) {
	confirmed := []*domain.Booking{
		bookingWithItems("251015-AAAAA", dayWindow(8, 12), "BRG-01", 10),
	}

	// Rescheduling the booking that holds the stock frees its own usage.
	err := CheckItemAvailability(
		dayWindow(9, 13),
		[]domain.BorrowedItem{{AssetCode: "BRG-01", Quantity: 10}},
		confirmed,
		itemCatalog(10),
		"251015-AAAAA",
	)
	assert.NoError(t, err)
}

func TestAggregateItems(t *testing.T) {
	lines := []domain.BorrowedItem{
		{AssetCode: "BRG-01", Quantity: 3},
		{AssetCode: "BRG-02", Quantity: 1},
		{AssetCode: "BRG-01", Quantity: 2},
		{AssetCode: "", Quantity: 5},
		{AssetCode: "BRG-03", Quantity: 0},
		{AssetCode: "BRG-04", Quantity: -1},
	}

	got := AggregateItems(lines)
	require.Len(t, got, 2)
	assert.Equal(t, domain.BorrowedItem{AssetCode: "BRG-01", Quantity: 5}, got[0])
	assert.Equal(t, domain.BorrowedItem{AssetCode: "BRG-02", Quantity: 1}, got[1])
}
