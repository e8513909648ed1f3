package get_available_slots

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/pkg/types"
)

// Request asks for bookable start times for one staff/store pair over
// an inclusive calendar date range.
type Request struct {
	StaffID         int64
	StoreID         int64
	StartDate       time.Time // calendar date, time part ignored
	EndDate         time.Time // calendar date, inclusive
	DurationMinutes int       // required service duration
}

// Response maps every date in the requested range ("YYYY-MM-DD") to the
// ascending list of offerable start times. A date with no availability
// maps to an empty list, never a missing key, so callers don't have to
// distinguish "closed" from "not computed".
type Response struct {
	StaffID int64
	Slots   map[string][]types.TimeString
}
