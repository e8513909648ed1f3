package models

import (
	"errors"
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CancelReservationRequest cancels a reservation on behalf of a user
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest moves a reservation to a new lifecycle state
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetCustomerReservationsRequest lists a customer's own history
type GetCustomerReservationsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetStaffReservationsRequest lists a staff member's agenda for a range
type GetStaffReservationsRequest struct {
	UserID          int64     `json:"userId"`
	StaffID         int64     `json:"staffId"`
	From            time.Time `json:"from"`
	To              time.Time `json:"to"`
	IncludeCanceled bool      `json:"includeCanceled,omitempty"`
}

// ToDomainFilter converts the request into a ledger filter
func (r *GetStaffReservationsRequest) ToDomainFilter() domain.StaffReservationsFilter {
	return domain.StaffReservationsFilter{
		StaffID:         r.StaffID,
		From:            r.From,
		To:              r.To,
		IncludeCanceled: r.IncludeCanceled,
	}
}

// ToDomainStatus validates and converts a status string
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusReserved, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCanceled:
		return domain.ReservationStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response models

// ReservationResponse is the API view of a reservation
type ReservationResponse struct {
	ID                int64  `json:"id"`
	ReservationNumber string `json:"reservationNumber"`

	CustomerID *int64  `json:"customerId,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`

	StaffID   int64 `json:"staffId"`
	ServiceID int64 `json:"serviceId"`
	StoreID   int64 `json:"storeId"`

	DateTime             time.Time `json:"dateTime"`
	TotalDurationMinutes int       `json:"totalDurationMinutes"`
	TotalPrice           float64   `json:"totalPrice"`
	Status               string    `json:"status"`
	Notes                *string   `json:"notes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse wraps a list of reservations
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation converts a domain reservation into the API view
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                   res.ID,
		ReservationNumber:    res.ReservationNumber,
		CustomerID:           res.CustomerID,
		GuestName:            res.GuestName,
		GuestEmail:           res.GuestEmail,
		GuestPhone:           res.GuestPhone,
		StaffID:              res.StaffID,
		ServiceID:            res.ServiceID,
		StoreID:              res.StoreID,
		DateTime:             res.DateTime,
		TotalDurationMinutes: res.TotalDurationMinutes,
		TotalPrice:           res.TotalPrice,
		Status:               string(res.Status),
		Notes:                res.Notes,
		CancellationReason:   res.CancellationReason,
		CancelledAt:          res.CancelledAt,
		CreatedAt:            res.CreatedAt,
		UpdatedAt:            res.UpdatedAt,
	}
}

// FromDomainReservationList converts a list of domain reservations
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, FromDomainReservation(res))
	}
	return &ReservationListResponse{Reservations: out, Total: len(out)}
}
