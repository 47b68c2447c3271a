package submit_request

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// ItemLine is one requested borrowed-item line. Empty codes and non-positive
// quantities are dropped during normalization; duplicate codes are merged.
type ItemLine struct {
	AssetCode string
	Quantity  int
}

// Request is the use case input for submitting a pending request.
type Request struct {
	Type  domain.BookingType
	Start time.Time
	End   time.Time

	UserName       string
	AssetCode      string
	PersonInCharge string
	PICPhone       string
	Notes          *string

	// LetterFile references an already-uploaded supporting document.
	LetterFile *string

	// Room fields.
	ActivityName string
	Items        []ItemLine

	// Vehicle fields.
	Destination string
	DriverID    *int64
}

// Response carries the stored pending request.
type Response struct {
	ID        int64
	RequestID string
	Status    domain.RequestStatus

	Type  domain.BookingType
	Start time.Time
	End   time.Time

	UserName       string
	AssetCode      string
	AssetName      string
	PersonInCharge string
	PICPhone       string
	Notes          *string
	LetterFile     *string

	ActivityName string
	Items        []domain.BorrowedItem

	Destination string
	DriverID    *int64
	DriverName  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainRequest flattens a request into the use case response.
func FromDomainRequest(r *domain.Request) *Response {
	resp := &Response{
		ID:             r.ID,
		RequestID:      r.RequestID,
		Status:         r.Status,
		Type:           r.Type,
		Start:          r.Window.Start,
		End:            r.Window.End,
		UserName:       r.UserName,
		AssetCode:      r.AssetCode,
		AssetName:      r.AssetName,
		PersonInCharge: r.PersonInCharge,
		PICPhone:       r.PICPhone,
		Notes:          r.Notes,
		LetterFile:     r.LetterFile,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Room != nil {
		resp.ActivityName = r.Room.ActivityName
		resp.Items = r.Room.BorrowedItems
	}
	if r.Vehicle != nil {
		resp.Destination = r.Vehicle.Destination
		resp.DriverID = r.Vehicle.DriverID
		resp.DriverName = r.Vehicle.DriverName
	}
	return resp
}
