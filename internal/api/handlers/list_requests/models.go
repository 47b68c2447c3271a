package list_requests

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// RequestSummary is one row of the administrative request list. Item lines
// are left to the detail view.
type RequestSummary struct {
	ID        int64   `json:"id"`
	RequestID string  `json:"request_id"`
	Status    string  `json:"status"`
	BookingID *string `json:"booking_id,omitempty"`

	Type    string    `json:"booking_type"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	UserName       string `json:"user_name"`
	AssetCode      string `json:"asset_code"`
	AssetName      string `json:"asset_name"`
	PersonInCharge string `json:"person_in_charge"`

	ActivityName string `json:"activity_name,omitempty"`
	Destination  string `json:"destination,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// RequestListResponse wraps the request list.
type RequestListResponse struct {
	Requests []RequestSummary `json:"requests"`
	Total    int              `json:"total"`
}

// FromDomainRequests converts requests into the list response.
func FromDomainRequests(list []*domain.Request) *RequestListResponse {
	summaries := make([]RequestSummary, 0, len(list))
	for _, req := range list {
		s := RequestSummary{
			ID:             req.ID,
			RequestID:      req.RequestID,
			Status:         string(req.Status),
			BookingID:      req.BookingID,
			Type:           string(req.Type),
			StartAt:        req.Window.Start,
			EndAt:          req.Window.End,
			UserName:       req.UserName,
			AssetCode:      req.AssetCode,
			AssetName:      req.AssetName,
			PersonInCharge: req.PersonInCharge,
			CreatedAt:      req.CreatedAt,
		}
		if req.Room != nil {
			s.ActivityName = req.Room.ActivityName
		}
		if req.Vehicle != nil {
			s.Destination = req.Vehicle.Destination
		}
		summaries = append(summaries, s)
	}

	return &RequestListResponse{
		Requests: summaries,
		Total:    len(summaries),
	}
}
