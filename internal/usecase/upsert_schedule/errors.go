package upsert_schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStaffNotFound is returned when the target staff member does not exist
	ErrStaffNotFound = errors.New("staff not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUnauthorized is returned when the acting user may not edit
	// this schedule. Only admins and the staff member themselves may.
	ErrUnauthorized = errors.New("not allowed to edit this schedule")

	// ErrInternal is returned when a collaborator call fails
	ErrInternal = errors.New("usecase: internal error")
)
