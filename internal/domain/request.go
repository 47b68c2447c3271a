package domain

import "time"

// RequestStatus is the lifecycle state of a request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Request is a proposed, not-yet-confirmed allocation. It moves from pending
// to exactly one terminal state and is immutable afterwards. On approval an
// independent Booking is created that copies the allocation fields; the two
// stay decoupled from then on.
type Request struct {
	ID        int64
	RequestID string
	Status    RequestStatus

	// BookingID is the code of the booking produced by approval.
	BookingID *string

	Type   BookingType
	Window Window

	UserName       string
	AssetCode      string
	AssetName      string
	PersonInCharge string
	PICPhone       string
	Notes          *string

	Room    *RoomDetails
	Vehicle *VehicleDetails

	// LetterFile references an uploaded supporting document; the upload
	// itself is handled outside this service.
	LetterFile *string

	RejectionReason *string
	ApprovedBy      *string
	ApprovedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the request can still transition.
func (r *Request) IsPending() bool {
	return r.Status == StatusPending
}

// Items returns the borrowed-item lines, or nil for vehicle requests.
func (r *Request) Items() []BorrowedItem {
	if r.Room == nil {
		return nil
	}
	return r.Room.BorrowedItems
}

// DriverID returns the requested driver reference, or nil.
func (r *Request) DriverID() *int64 {
	if r.Vehicle == nil {
		return nil
	}
	return r.Vehicle.DriverID
}
