package directory

import "errors"

var (
	// ErrUserNotFound is returned when the directory has no such user
	ErrUserNotFound = errors.New("directory: user not found")

	// ErrStaffNotFound is returned when the directory has no such staff member
	ErrStaffNotFound = errors.New("directory: staff not found")

	// ErrInvalidResponse is returned when the directory answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("directory: invalid response")

	// ErrInternal is returned for transport-level failures
	ErrInternal = errors.New("directory: internal error")
)
