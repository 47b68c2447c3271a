package approve_request

import (
	"time"

	approveRequest "github.com/oniit/e-jadwal-public-web/internal/usecase/approve_request"
)

// ApproveRequestRequest is the HTTP payload for approving a request.
type ApproveRequestRequest struct {
	// DriverID optionally overrides the requested driver.
	DriverID *int64 `json:"driver_id,omitempty"`
}

// ItemResponse is one borrowed-item line in the HTTP response.
type ItemResponse struct {
	AssetCode string `json:"asset_code"`
	AssetName string `json:"asset_name"`
	Quantity  int    `json:"quantity"`
}

// BookingResponse is the booking created by the approval.
type BookingResponse struct {
	ID        int64     `json:"id"`
	BookingID string    `json:"booking_id"`
	Type      string    `json:"booking_type"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`

	UserName       string `json:"user_name"`
	AssetCode      string `json:"asset_code"`
	AssetName      string `json:"asset_name"`
	PersonInCharge string `json:"person_in_charge"`

	ActivityName string         `json:"activity_name,omitempty"`
	Items        []ItemResponse `json:"items,omitempty"`

	Destination string  `json:"destination,omitempty"`
	DriverID    *int64  `json:"driver_id,omitempty"`
	DriverName  *string `json:"driver_name,omitempty"`
}

// ApproveRequestResponse is the HTTP representation of the approval outcome.
type ApproveRequestResponse struct {
	RequestID  string           `json:"request_id"`
	Status     string           `json:"status"`
	ApprovedBy string           `json:"approved_by"`
	ApprovedAt time.Time        `json:"approved_at"`
	Booking    *BookingResponse `json:"booking"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *approveRequest.Response) *ApproveRequestResponse {
	items := make([]ItemResponse, 0, len(resp.Booking.Items))
	for _, it := range resp.Booking.Items {
		items = append(items, ItemResponse{
			AssetCode: it.AssetCode,
			AssetName: it.AssetName,
			Quantity:  it.Quantity,
		})
	}

	return &ApproveRequestResponse{
		RequestID:  resp.RequestID,
		Status:     string(resp.Status),
		ApprovedBy: resp.ApprovedBy,
		ApprovedAt: resp.ApprovedAt,
		Booking: &BookingResponse{
			ID:             resp.Booking.ID,
			BookingID:      resp.Booking.BookingID,
			Type:           string(resp.Booking.Type),
			StartAt:        resp.Booking.Start,
			EndAt:          resp.Booking.End,
			UserName:       resp.Booking.UserName,
			AssetCode:      resp.Booking.AssetCode,
			AssetName:      resp.Booking.AssetName,
			PersonInCharge: resp.Booking.PersonInCharge,
			ActivityName:   resp.Booking.ActivityName,
			Items:          items,
			Destination:    resp.Booking.Destination,
			DriverID:       resp.Booking.DriverID,
			DriverName:     resp.Booking.DriverName,
		},
	}
}
