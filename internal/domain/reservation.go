package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusReserved   ReservationStatus = "reserved"
	StatusInProgress ReservationStatus = "in-progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCanceled   ReservationStatus = "canceled"
)

// Reservation represents a booked appointment. Cancellation is a status
// write, never a record removal.
type Reservation struct {
	ID                int64
	ReservationNumber string

	// CustomerID is nil for guest reservations; guest contact fields
	// are set instead.
	CustomerID *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	StaffID   int64
	ServiceID int64
	StoreID   int64

	// DateTime is the absolute start instant (stored in UTC)
	DateTime             time.Time
	TotalDurationMinutes int
	TotalPrice           float64

	Status ReservationStatus
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation occupies time for
// availability purposes (everything except canceled).
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCanceled
}

// IsGuest reports whether the reservation was made without an account
func (r *Reservation) IsGuest() bool {
	return r.CustomerID == nil
}

// CanBeCancelled reports whether cancellation is still reachable
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusReserved || r.Status == StatusInProgress
}

// End returns the instant the reservation stops occupying time
func (r *Reservation) End() time.Time {
	return r.DateTime.Add(time.Duration(r.TotalDurationMinutes) * time.Minute)
}

// CanTransitionTo reports whether a status change is allowed.
// Transitions only move forward; cancellation is reachable from
// reserved and in-progress only.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusReserved:
		return next == StatusInProgress || next == StatusCompleted || next == StatusCanceled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCanceled
	default:
		return false
	}
}

// StaffReservationsFilter selects reservations of one staff member
// within a closed instant range.
type StaffReservationsFilter struct {
	StaffID         int64
	From            time.Time
	To              time.Time
	IncludeCanceled bool
}
