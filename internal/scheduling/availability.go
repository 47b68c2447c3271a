package scheduling

import (
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// ItemUnavailableError reports a borrowed-item code that is unknown to the
// catalog or has no positive stock.
type ItemUnavailableError struct {
	AssetCode string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("item %s not available", e.AssetCode)
}

// StockError reports that a borrowed-item request exceeds the stock left in
// the proposed window. Remaining is capacity minus already-committed usage,
// floored at zero.
type StockError struct {
	AssetCode string
	AssetName string
	Remaining int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("request exceeds stock; %d units of %q remain in that window", e.Remaining, e.AssetName)
}

// CheckItemAvailability verifies that the proposed borrowed-item lines can be
// satisfied alongside every confirmed booking overlapping the window. Items
// are not fungible across codes: each code is a separate sliding-window
// capacity constraint.
//
// Lines must already be aggregated per code (quantities summed). catalog maps
// item code to its countable catalog entry; codes missing from the map fail
// as unavailable. excludeBookingID skips one booking from the committed-usage
// sum, for edits of an existing booking.
func CheckItemAvailability(
	w domain.Window,
	lines []domain.BorrowedItem,
	confirmed []*domain.Booking,
	catalog map[string]*domain.Asset,
	excludeBookingID string,
) error {
	if len(lines) == 0 {
		return nil
	}

	used := committedUsage(w, confirmed, excludeBookingID)

	for _, line := range lines {
		asset, ok := catalog[line.AssetCode]
		if !ok || !asset.IsCountable() || asset.Capacity <= 0 {
			return &ItemUnavailableError{AssetCode: line.AssetCode}
		}

		if used[line.AssetCode]+line.Quantity > asset.Capacity {
			remaining := asset.Capacity - used[line.AssetCode]
			if remaining < 0 {
				remaining = 0
			}
			return &StockError{
				AssetCode: line.AssetCode,
				AssetName: asset.Name,
				Remaining: remaining,
			}
		}
	}
	return nil
}

// committedUsage sums the borrowed quantities per item code across all
// confirmed bookings overlapping w.
func committedUsage(w domain.Window, confirmed []*domain.Booking, excludeBookingID string) map[string]int {
	used := make(map[string]int)

	for _, b := range confirmed {
		if excludeBookingID != "" && b.BookingID == excludeBookingID {
			continue
		}
		if !b.Window.Overlaps(w) {
			continue
		}
		for _, it := range b.Items() {
			if it.Quantity <= 0 {
				continue
			}
			used[it.AssetCode] += it.Quantity
		}
	}
	return used
}

// AggregateItems merges duplicate codes in raw item lines, summing their
// quantities, and drops lines with an empty code or non-positive quantity.
// Line order of first appearance is preserved.
func AggregateItems(lines []domain.BorrowedItem) []domain.BorrowedItem {
	merged := make([]domain.BorrowedItem, 0, len(lines))
	index := make(map[string]int)

	for _, line := range lines {
		if line.AssetCode == "" || line.Quantity <= 0 {
			continue
		}
		if i, ok := index[line.AssetCode]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.AssetCode] = len(merged)
		merged = append(merged, line)
	}
	return merged
}
