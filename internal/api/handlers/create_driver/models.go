package create_driver

import (
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// CreateDriverRequest is the HTTP payload for adding a driver.
type CreateDriverRequest struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Detail *string `json:"detail,omitempty"`
}

// ToDomainDriver converts the HTTP payload into the domain model.
func (r *CreateDriverRequest) ToDomainDriver() *domain.Driver {
	return &domain.Driver{
		Code:   r.Code,
		Name:   r.Name,
		Phone:  r.Phone,
		Detail: r.Detail,
	}
}

// DriverResponse is the HTTP representation of the stored driver.
type DriverResponse struct {
	ID     int64   `json:"id"`
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Detail *string `json:"detail,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomainDriver converts a driver into the HTTP response.
func FromDomainDriver(d *domain.Driver) *DriverResponse {
	return &DriverResponse{
		ID:        d.ID,
		Code:      d.Code,
		Name:      d.Name,
		Phone:     d.Phone,
		Detail:    d.Detail,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
