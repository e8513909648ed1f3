package schedule

import "errors"

var (
	// ErrScheduleNotFound is returned when a staff member has no schedule.
	// This is the normal representation of "not yet scheduled", not a failure.
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrBuildQuery is returned when building the SQL statement fails
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrMarshal is returned when encoding a schedule field to JSON fails
	ErrMarshal = errors.New("schedule.repository: failed to marshal field")
)
