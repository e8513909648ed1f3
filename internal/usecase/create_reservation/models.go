package create_reservation

import "time"

// Request carries everything needed to book an appointment. CustomerID
// is nil for guest reservations, in which case the guest contact fields
// are required.
type Request struct {
	CustomerID *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	StaffID   int64
	ServiceID int64
	StoreID   int64

	DateTime             time.Time // absolute start instant
	TotalDurationMinutes int
	TotalPrice           float64
	Notes                *string
}

// Response is the created reservation
type Response struct {
	ID                int64
	ReservationNumber string

	CustomerID *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	StaffID   int64
	ServiceID int64
	StoreID   int64

	DateTime             time.Time
	TotalDurationMinutes int
	TotalPrice           float64
	Status               string
	Notes                *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
