package create_reservation

import (
	"fmt"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

// validateRequest checks the request shape before any storage access
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeId must be positive", ErrInvalidInput)
	}
	if req.DateTime.IsZero() {
		return fmt.Errorf("%w: dateTime is required", ErrInvalidInput)
	}
	if req.TotalDurationMinutes <= 0 {
		return fmt.Errorf("%w: totalDurationMinutes must be positive", ErrInvalidInput)
	}
	if req.TotalDurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: totalDurationMinutes must not exceed %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}
	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.CustomerID == nil {
		// Guest bookings need a way to reach the customer
		if req.GuestName == nil || *req.GuestName == "" {
			return fmt.Errorf("%w: guestName is required for guest reservations", ErrInvalidInput)
		}
		if req.GuestEmail == nil || *req.GuestEmail == "" {
			return fmt.Errorf("%w: guestEmail is required for guest reservations", ErrInvalidInput)
		}
		if req.GuestPhone == nil || *req.GuestPhone == "" {
			return fmt.Errorf("%w: guestPhone is required for guest reservations", ErrInvalidInput)
		}
	} else if *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}

	return nil
}
