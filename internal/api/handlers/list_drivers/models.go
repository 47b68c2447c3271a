package list_drivers

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// DriverResponse is the HTTP representation of one directory entry.
type DriverResponse struct {
	ID     int64   `json:"id"`
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Detail *string `json:"detail,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DriverListResponse wraps the directory.
type DriverListResponse struct {
	Drivers []DriverResponse `json:"drivers"`
	Total   int              `json:"total"`
}

// FromDomainDrivers converts directory entries into the list response.
func FromDomainDrivers(directory []*domain.Driver) *DriverListResponse {
	drivers := make([]DriverResponse, 0, len(directory))
	for _, d := range directory {
		drivers = append(drivers, DriverResponse{
			ID:        d.ID,
			Code:      d.Code,
			Name:      d.Name,
			Phone:     d.Phone,
			Detail:    d.Detail,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}

	return &DriverListResponse{
		Drivers: drivers,
		Total:   len(drivers),
	}
}
