package stores

import "errors"

var (
	// ErrStoreNotFound is returned when the store does not exist
	ErrStoreNotFound = errors.New("store not found")

	// ErrUserNotFound is returned when the acting user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied is returned when the acting user is not an admin
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository and integration failures
	ErrInternal = errors.New("service: internal error")
)
