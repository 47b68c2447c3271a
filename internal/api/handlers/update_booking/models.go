package update_booking

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	updateBooking "github.com/oniit/e-jadwal-public-web/internal/usecase/update_booking"
)

// ItemRequest is one borrowed-item line in the HTTP payload.
type ItemRequest struct {
	AssetCode string `json:"asset_code"`
	Quantity  int    `json:"quantity"`
}

// UpdateBookingRequest is the HTTP payload for rewriting a booking. The code
// comes from the path; the body carries the full replacement state.
type UpdateBookingRequest struct {
	Type    string    `json:"booking_type"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	UserName       string  `json:"user_name"`
	AssetCode      string  `json:"asset_code"`
	PersonInCharge string  `json:"person_in_charge"`
	PICPhone       string  `json:"pic_phone"`
	Notes          *string `json:"notes,omitempty"`

	ActivityName string        `json:"activity_name,omitempty"`
	Items        []ItemRequest `json:"items,omitempty"`

	Destination string `json:"destination,omitempty"`
	DriverID    *int64 `json:"driver_id,omitempty"`
}

// ToUseCaseRequest converts the HTTP payload into the use case model.
func (r *UpdateBookingRequest) ToUseCaseRequest(code string) *updateBooking.Request {
	items := make([]updateBooking.ItemLine, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, updateBooking.ItemLine{
			AssetCode: it.AssetCode,
			Quantity:  it.Quantity,
		})
	}

	return &updateBooking.Request{
		BookingID:      code,
		Type:           domain.BookingType(r.Type),
		Start:          r.StartAt,
		End:            r.EndAt,
		UserName:       r.UserName,
		AssetCode:      r.AssetCode,
		PersonInCharge: r.PersonInCharge,
		PICPhone:       r.PICPhone,
		Notes:          r.Notes,
		ActivityName:   r.ActivityName,
		Items:          items,
		Destination:    r.Destination,
		DriverID:       r.DriverID,
	}
}

// ItemResponse is one borrowed-item line in the HTTP response.
type ItemResponse struct {
	AssetCode string `json:"asset_code"`
	AssetName string `json:"asset_name"`
	Quantity  int    `json:"quantity"`
}

// BookingResponse is the HTTP representation of the rewritten booking.
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

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	items := make([]ItemResponse, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, ItemResponse{
			AssetCode: it.AssetCode,
			AssetName: it.AssetName,
			Quantity:  it.Quantity,
		})
	}

	return &BookingResponse{
		ID:             resp.ID,
		BookingID:      resp.BookingID,
		Type:           string(resp.Type),
		StartAt:        resp.Start,
		EndAt:          resp.End,
		SubmittedAt:    resp.SubmittedAt,
		UserName:       resp.UserName,
		AssetCode:      resp.AssetCode,
		AssetName:      resp.AssetName,
		PersonInCharge: resp.PersonInCharge,
		PICPhone:       resp.PICPhone,
		Notes:          resp.Notes,
		ActivityName:   resp.ActivityName,
		Items:          items,
		Destination:    resp.Destination,
		DriverID:       resp.DriverID,
		DriverName:     resp.DriverName,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}
}
