package create_reservation

import (
	"time"

	createReservation "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StaffID   int64 `json:"staffId"`
	ServiceID int64 `json:"serviceId"`
	StoreID   int64 `json:"storeId"`

	DateTime             time.Time `json:"dateTime"`
	TotalDurationMinutes int       `json:"totalDurationMinutes"`
	TotalPrice           float64   `json:"totalPrice"`
	Notes                *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateReservationRequest) ToUseCaseRequest(customerID int64) *createReservation.Request {
	return &createReservation.Request{
		CustomerID:           &customerID,
		StaffID:              r.StaffID,
		ServiceID:            r.ServiceID,
		StoreID:              r.StoreID,
		DateTime:             r.DateTime,
		TotalDurationMinutes: r.TotalDurationMinutes,
		TotalPrice:           r.TotalPrice,
		Notes:                r.Notes,
	}
}

// ReservationResponse HTTP response model
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                   resp.ID,
		ReservationNumber:    resp.ReservationNumber,
		CustomerID:           resp.CustomerID,
		GuestName:            resp.GuestName,
		GuestEmail:           resp.GuestEmail,
		GuestPhone:           resp.GuestPhone,
		StaffID:              resp.StaffID,
		ServiceID:            resp.ServiceID,
		StoreID:              resp.StoreID,
		DateTime:             resp.DateTime,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalPrice:           resp.TotalPrice,
		Status:               resp.Status,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt,
		UpdatedAt:            resp.UpdatedAt,
	}
}
