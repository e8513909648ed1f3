package domain

// Slot grid constants
const (
	// SlotStepMinutes is the fixed grid step for offered start times.
	// Every offer is aligned to this step regardless of service duration.
	SlotStepMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Venue time defaults
const (
	// DefaultVenueUTCOffsetMinutes is the fixed offset applied when
	// converting wall-clock slot times to instants (JST).
	DefaultVenueUTCOffsetMinutes = 9 * 60
)

// Validation bounds
const (
	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MaxDurationMinutes = 8 * 60
	MaxNotesLength     = 500

	MaxCancellationReasonLength = 500

	ReservationNumberLength = 8
)

// ActiveStatuses lists the statuses that occupy time for availability.
// Completed reservations stay in the list: they represent historically
// occupied time even though past slots are never offered.
var ActiveStatuses = []ReservationStatus{
	StatusReserved,
	StatusInProgress,
	StatusCompleted,
}
