package get_booking

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// ItemResponse is one borrowed-item line in the HTTP response.
type ItemResponse struct {
	AssetCode string `json:"asset_code"`
	AssetName string `json:"asset_name"`
	Quantity  int    `json:"quantity"`
}

// BookingResponse is the HTTP representation of a booking.
type BookingResponse struct {
	ID          int64     `json:"id"`
	BookingID   string    `json:"booking_id"`
	Type        string    `json:"booking_type"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	SubmittedAt time.Time `json:"submitted_at"`

	UserName       string  `json:"user_name"`
	AssetCode      string  `json:"asset_code"`
	AssetName      string  `json:"asset_name"`
	PersonInCharge string  `json:"person_in_charge"`
	PICPhone       string  `json:"pic_phone"`
	Notes          *string `json:"notes,omitempty"`

	ActivityName string         `json:"activity_name,omitempty"`
	Items        []ItemResponse `json:"items,omitempty"`

	Destination string  `json:"destination,omitempty"`
	DriverID    *int64  `json:"driver_id,omitempty"`
	DriverName  *string `json:"driver_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomainBooking converts a booking into the HTTP response.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:             b.ID,
		BookingID:      b.BookingID,
		Type:           string(b.Type),
		StartAt:        b.Window.Start,
		EndAt:          b.Window.End,
		SubmittedAt:    b.SubmittedAt,
		UserName:       b.UserName,
		AssetCode:      b.AssetCode,
		AssetName:      b.AssetName,
		PersonInCharge: b.PersonInCharge,
		PICPhone:       b.PICPhone,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if b.Room != nil {
		resp.ActivityName = b.Room.ActivityName
		items := make([]ItemResponse, 0, len(b.Room.BorrowedItems))
		for _, it := range b.Room.BorrowedItems {
			items = append(items, ItemResponse{
				AssetCode: it.AssetCode,
				AssetName: it.AssetName,
				Quantity:  it.Quantity,
			})
		}
		resp.Items = items
	}
	if b.Vehicle != nil {
		resp.Destination = b.Vehicle.Destination
		resp.DriverID = b.Vehicle.DriverID
		resp.DriverName = b.Vehicle.DriverName
	}
	return resp
}
