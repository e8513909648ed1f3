package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests: non-positive
	// duration, missing IDs, or an inverted date range.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned when a collaborator read fails
	ErrInternal = errors.New("usecase: internal error")
)
