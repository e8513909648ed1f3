package create_guest_reservation

import (
	"time"

	createReservation "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/create_reservation"
)

// CreateGuestReservationRequest HTTP request model. No account is
// involved; the contact fields identify the guest.
type CreateGuestReservationRequest struct {
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	StaffID   int64 `json:"staffId"`
	ServiceID int64 `json:"serviceId"`
	StoreID   int64 `json:"storeId"`

	DateTime             time.Time `json:"dateTime"`
	TotalDurationMinutes int       `json:"totalDurationMinutes"`
	TotalPrice           float64   `json:"totalPrice"`
	Notes                *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateGuestReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		GuestName:            &r.GuestName,
		GuestEmail:           &r.GuestEmail,
		GuestPhone:           &r.GuestPhone,
		StaffID:              r.StaffID,
		ServiceID:            r.ServiceID,
		StoreID:              r.StoreID,
		DateTime:             r.DateTime,
		TotalDurationMinutes: r.TotalDurationMinutes,
		TotalPrice:           r.TotalPrice,
		Notes:                r.Notes,
	}
}

// GuestReservationResponse HTTP response model. The reservation number
// is the guest's only handle on the booking, so it leads the payload.
type GuestReservationResponse struct {
	ID                int64  `json:"id"`
	ReservationNumber string `json:"reservationNumber"`

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
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createReservation.Response) *GuestReservationResponse {
	return &GuestReservationResponse{
		ID:                   resp.ID,
		ReservationNumber:    resp.ReservationNumber,
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
	}
}
