package list_bookings

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// ItemResponse is one borrowed-item line on the public schedule.
type ItemResponse struct {
	AssetCode string `json:"asset_code"`
	AssetName string `json:"asset_name"`
	Quantity  int    `json:"quantity"`
}

// PublicBookingResponse is the schedule projection shown without
// authentication. Requester names and phone numbers stay out of it.
type PublicBookingResponse struct {
	BookingID   string    `json:"booking_id"`
	Type        string    `json:"booking_type"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	SubmittedAt time.Time `json:"submitted_at"`

	AssetCode string `json:"asset_code"`
	AssetName string `json:"asset_name"`

	ActivityName string         `json:"activity_name,omitempty"`
	Items        []ItemResponse `json:"items,omitempty"`

	Destination string `json:"destination,omitempty"`
}

// BookingListResponse wraps the public schedule.
type BookingListResponse struct {
	Bookings []PublicBookingResponse `json:"bookings"`
	Total    int                     `json:"total"`
}

// FromDomainBookings projects bookings onto the public schedule view.
func FromDomainBookings(list []*domain.Booking) *BookingListResponse {
	bookings := make([]PublicBookingResponse, 0, len(list))
	for _, b := range list {
		item := PublicBookingResponse{
			BookingID:   b.BookingID,
			Type:        string(b.Type),
			StartAt:     b.Window.Start,
			EndAt:       b.Window.End,
			SubmittedAt: b.SubmittedAt,
			AssetCode:   b.AssetCode,
			AssetName:   b.AssetName,
		}
		if b.Room != nil {
			item.ActivityName = b.Room.ActivityName
			items := make([]ItemResponse, 0, len(b.Room.BorrowedItems))
			for _, it := range b.Room.BorrowedItems {
				items = append(items, ItemResponse{
					AssetCode: it.AssetCode,
					AssetName: it.AssetName,
					Quantity:  it.Quantity,
				})
			}
			item.Items = items
		}
		if b.Vehicle != nil {
			item.Destination = b.Vehicle.Destination
		}
		bookings = append(bookings, item)
	}

	return &BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	}
}
