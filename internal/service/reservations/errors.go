package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("staff not found")

	// ErrAccessDenied is returned when the caller may not see or change
	// the reservation.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the reservation is already
	// completed or canceled.
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidTransition is returned when the status change is not
	// allowed from the current state.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository and integration failures
	ErrInternal = errors.New("service: internal error")
)
