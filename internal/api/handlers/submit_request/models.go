package submit_request

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	submitRequest "github.com/oniit/e-jadwal-public-web/internal/usecase/submit_request"
)

// ItemRequest is one borrowed-item line in the HTTP payload.
type ItemRequest struct {
	AssetCode string `json:"asset_code"`
	Quantity  int    `json:"quantity"`
}

// SubmitRequestRequest is the HTTP payload for submitting a request.
type SubmitRequestRequest struct {
	Type    string    `json:"booking_type"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	UserName       string  `json:"user_name"`
	AssetCode      string  `json:"asset_code"`
	PersonInCharge string  `json:"person_in_charge"`
	PICPhone       string  `json:"pic_phone"`
	Notes          *string `json:"notes,omitempty"`
	LetterFile     *string `json:"letter_file,omitempty"`

	ActivityName string        `json:"activity_name,omitempty"`
	Items        []ItemRequest `json:"items,omitempty"`

	Destination string `json:"destination,omitempty"`
	DriverID    *int64 `json:"driver_id,omitempty"`
}

// ToUseCaseRequest converts the HTTP payload into the use case model.
func (r *SubmitRequestRequest) ToUseCaseRequest() *submitRequest.Request {
	items := make([]submitRequest.ItemLine, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, submitRequest.ItemLine{
			AssetCode: it.AssetCode,
			Quantity:  it.Quantity,
		})
	}

	return &submitRequest.Request{
		Type:           domain.BookingType(r.Type),
		Start:          r.StartAt,
		End:            r.EndAt,
		UserName:       r.UserName,
		AssetCode:      r.AssetCode,
		PersonInCharge: r.PersonInCharge,
		PICPhone:       r.PICPhone,
		Notes:          r.Notes,
		LetterFile:     r.LetterFile,
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

// RequestResponse is the HTTP representation of the stored request.
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

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *submitRequest.Response) *RequestResponse {
	items := make([]ItemResponse, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, ItemResponse{
			AssetCode: it.AssetCode,
			AssetName: it.AssetName,
			Quantity:  it.Quantity,
		})
	}

	return &RequestResponse{
		ID:             resp.ID,
		RequestID:      resp.RequestID,
		Status:         string(resp.Status),
		Type:           string(resp.Type),
		StartAt:        resp.Start,
		EndAt:          resp.End,
		UserName:       resp.UserName,
		AssetCode:      resp.AssetCode,
		AssetName:      resp.AssetName,
		PersonInCharge: resp.PersonInCharge,
		PICPhone:       resp.PICPhone,
		Notes:          resp.Notes,
		LetterFile:     resp.LetterFile,
		ActivityName:   resp.ActivityName,
		Items:          items,
		Destination:    resp.Destination,
		DriverID:       resp.DriverID,
		DriverName:     resp.DriverName,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}
}
