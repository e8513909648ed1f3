package create_reservation

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreNotFound is returned when the store does not exist
	ErrStoreNotFound = errors.New("store not found")

	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("staff not found")

	// ErrCustomerNotFound is returned when the customer account does not exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSlotTaken is returned when the requested interval overlaps an
	// active reservation. First successful conflicting write wins; the
	// caller should re-query availability.
	ErrSlotTaken = errors.New("requested time is no longer available")

	// ErrPastDateTime is returned when the requested start is in the past
	ErrPastDateTime = errors.New("reservation time is in the past")

	// ErrInternal is returned when a collaborator call fails
	ErrInternal = errors.New("usecase: internal error")
)
