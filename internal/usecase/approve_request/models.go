package approve_request

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// Request is the use case input for approving a pending request.
type Request struct {
	// RequestID is the public code of the request.
	RequestID string

	// ApprovedBy identifies the deciding administrator.
	ApprovedBy string

	// DriverID optionally overrides the driver the requester asked for.
	// Only meaningful on vehicle requests.
	DriverID *int64
}

// Response carries the approval outcome: the request in its terminal state
// and the booking created from it.
type Response struct {
	RequestID  string
	Status     domain.RequestStatus
	ApprovedBy string
	ApprovedAt time.Time

	Booking *BookingSummary
}

// BookingSummary is the booking materialized by the approval.
type BookingSummary struct {
	ID        int64
	BookingID string
	Type      domain.BookingType
	Start     time.Time
	End       time.Time

	UserName       string
	AssetCode      string
	AssetName      string
	PersonInCharge string

	ActivityName string
	Items        []domain.BorrowedItem

	Destination string
	DriverID    *int64
	DriverName  *string
}

func fromDomainBooking(b *domain.Booking) *BookingSummary {
	s := &BookingSummary{
		ID:             b.ID,
		BookingID:      b.BookingID,
		Type:           b.Type,
		Start:          b.Window.Start,
		End:            b.Window.End,
		UserName:       b.UserName,
		AssetCode:      b.AssetCode,
		AssetName:      b.AssetName,
		PersonInCharge: b.PersonInCharge,
	}
	if b.Room != nil {
		s.ActivityName = b.Room.ActivityName
		s.Items = b.Room.BorrowedItems
	}
	if b.Vehicle != nil {
		s.Destination = b.Vehicle.Destination
		s.DriverID = b.Vehicle.DriverID
		s.DriverName = b.Vehicle.DriverName
	}
	return s
}
