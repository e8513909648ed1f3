package schedules

import "errors"

var (
	// ErrScheduleNotFound is returned when the staff member has no schedule
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository failures
	ErrInternal = errors.New("service: internal error")
)
