package update_booking

import (
	"fmt"
	"strings"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}
	if !domain.ValidBookingType(req.Type) {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}
	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.AssetCode) == "" {
		return fmt.Errorf("%w: asset code is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PersonInCharge) == "" {
		return fmt.Errorf("%w: person in charge is required", ErrInvalidInput)
	}

	w := domain.Window{Start: req.Start, End: req.End}
	if !w.Valid() {
		return ErrInvalidTimeRange
	}

	switch req.Type {
	case domain.BookingTypeRoom:
		if strings.TrimSpace(req.ActivityName) == "" {
			return fmt.Errorf("%w: activity name is required for a room booking", ErrInvalidInput)
		}
	case domain.BookingTypeVehicle:
		if strings.TrimSpace(req.Destination) == "" {
			return fmt.Errorf("%w: destination is required for a vehicle booking", ErrInvalidInput)
		}
		if len(req.Items) > 0 {
			return fmt.Errorf("%w: vehicle bookings carry no borrowed items", ErrInvalidInput)
		}
	}

	return nil
}

func itemLines(items []ItemLine) []domain.BorrowedItem {
	lines := make([]domain.BorrowedItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.BorrowedItem{
			AssetCode: strings.TrimSpace(it.AssetCode),
			Quantity:  it.Quantity,
		})
	}
	return lines
}
