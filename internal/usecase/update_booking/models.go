package update_booking

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// ItemLine is one requested borrowed-item line.
type ItemLine struct {
	AssetCode string
	Quantity  int
}

// Request is the full replacement state for an existing booking, addressed by
// its public code. The code itself never changes.
type Request struct {
	BookingID string

	Type  domain.BookingType
	Start time.Time
	End   time.Time

	UserName       string
	AssetCode      string
	PersonInCharge string
	PICPhone       string
	Notes          *string

	ActivityName string
	Items        []ItemLine

	Destination string
	DriverID    *int64
}

// Response carries the booking after the rewrite.
type Response struct {
	ID          int64
	BookingID   string
	Type        domain.BookingType
	Start       time.Time
	End         time.Time
	SubmittedAt time.Time

	UserName       string
	AssetCode      string
	AssetName      string
	PersonInCharge string
	PICPhone       string
	Notes          *string

	ActivityName string
	Items        []domain.BorrowedItem

	Destination string
	DriverID    *int64
	DriverName  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainBooking flattens a booking into the use case response.
func FromDomainBooking(b *domain.Booking) *Response {
	resp := &Response{
		ID:             b.ID,
		BookingID:      b.BookingID,
		Type:           b.Type,
		Start:          b.Window.Start,
		End:            b.Window.End,
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
		resp.Items = b.Room.BorrowedItems
	}
	if b.Vehicle != nil {
		resp.Destination = b.Vehicle.Destination
		resp.DriverID = b.Vehicle.DriverID
		resp.DriverName = b.Vehicle.DriverName
	}
	return resp
}
