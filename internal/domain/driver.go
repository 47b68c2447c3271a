package domain

import "time"

// Driver is a human resource assignable to vehicle bookings. Like an
// exclusive asset, a driver can serve at most one confirmed booking at any
// instant.
type Driver struct {
	ID     int64
	Code   string
	Name   string
	Phone  *string
	Detail *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
