package store

import "errors"

var (
	// ErrStoreNotFound is returned when the store does not exist
	ErrStoreNotFound = errors.New("store.repository: store not found")

	// ErrBuildQuery is returned when building the SQL statement fails
	ErrBuildQuery = errors.New("store.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails
	ErrExecQuery = errors.New("store.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("store.repository: failed to scan row")

	// ErrMarshal is returned when encoding a store field to JSON fails
	ErrMarshal = errors.New("store.repository: failed to marshal field")
)
