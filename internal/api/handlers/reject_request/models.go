package reject_request

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

// RequestResponse is the HTTP representation of the request as decided.
type RequestResponse struct {
	ID        int64  `json:"id"`
	RequestID string `json:"request_id"`
	Status    string `json:"status"`

	Type    string    `json:"booking_type"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	UserName       string  `json:"user_name"`
	AssetCode      string  `json:"asset_code"`
	AssetName      string  `json:"asset_name"`
	PersonInCharge string  `json:"person_in_charge"`
	PICPhone       string  `json:"pic_phone"`
	Notes          *string `json:"notes,omitempty"`
	LetterFile     *string `json:"letter_file,omitempty"`

	ActivityName string         `json:"activity_name,omitempty"`
	Items        []ItemResponse `json:"items,omitempty"`

	Destination string  `json:"destination,omitempty"`
	DriverID    *int64  `json:"driver_id,omitempty"`
	DriverName  *string `json:"driver_name,omitempty"`

	RejectionReason *string `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomainRequest converts the rejected request into the HTTP response.
func FromDomainRequest(req *domain.Request) *RequestResponse {
	resp := &RequestResponse{
		ID:              req.ID,
		RequestID:       req.RequestID,
		Status:          string(req.Status),
		Type:            string(req.Type),
		StartAt:         req.Window.Start,
		EndAt:           req.Window.End,
		UserName:        req.UserName,
		AssetCode:       req.AssetCode,
		AssetName:       req.AssetName,
		PersonInCharge:  req.PersonInCharge,
		PICPhone:        req.PICPhone,
		Notes:           req.Notes,
		LetterFile:      req.LetterFile,
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
	}
	if req.Room != nil {
		resp.ActivityName = req.Room.ActivityName
		items := make([]ItemResponse, 0, len(req.Room.BorrowedItems))
		for _, it := range req.Room.BorrowedItems {
			items = append(items, ItemResponse{
				AssetCode: it.AssetCode,
				AssetName: it.AssetName,
				Quantity:  it.Quantity,
			})
		}
		resp.Items = items
	}
	if req.Vehicle != nil {
		resp.Destination = req.Vehicle.Destination
		resp.DriverID = req.Vehicle.DriverID
		resp.DriverName = req.Vehicle.DriverName
	}
	return resp
}
