package get_available_slots

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/types"
)

// resolveDayWindow computes the effective bookable window for one date.
// Returns ok=false when the day yields no slots at all.
//
// Closures dominate: a store or staff holiday empties the day even when
// a special workday entry exists for the same date. A special workday
// otherwise replaces the weekly pattern entirely and is not intersected
// with store opening hours. On a plain weekday the window is the
// intersection of the store and staff windows; a missing entry on
// either side means the day is off.
func resolveDayWindow(
	dateStr string,
	dayOfWeek int,
	store *domain.Store,
	schedule *domain.Schedule,
) (start, end types.TimeString, ok bool) {
	if store.IsHoliday(dateStr) {
		return "", "", false
	}

	// No schedule means fully unavailable, never fully open
	if schedule == nil {
		return "", "", false
	}

	if schedule.IsHoliday(dateStr) {
		return "", "", false
	}

	if override := schedule.WorkdayOverride(dateStr); override != nil {
		return override.StartTime, override.EndTime, true
	}

	storeHours := store.OpeningHoursFor(dayOfWeek)
	staffHours := schedule.WorkingHoursFor(dayOfWeek)
	if storeHours == nil || staffHours == nil {
		return "", "", false
	}

	start = storeHours.StartTime
	if staffHours.StartTime.IsAfter(start) {
		start = staffHours.StartTime
	}
	end = storeHours.EndTime
	if staffHours.EndTime.IsBefore(end) {
		end = staffHours.EndTime
	}

	if !start.IsBefore(end) {
		return "", "", false
	}
	return start, end, true
}

// generateTimeSlots produces the 30-minute candidate grid from start
// (inclusive) up to, but not including, end.
func generateTimeSlots(start, end types.TimeString) []types.TimeString {
	slots := make([]types.TimeString, 0)

	current := start
	for current.IsBefore(end) {
		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			// Hit the end of day
			break
		}
		current = next
	}

	return slots
}

// excludeReserved drops candidates whose 30-minute cell overlaps any
// active reservation. Intervals are half-open, so a reservation ending
// exactly where a cell starts does not block it.
func excludeReserved(
	dateStr string,
	candidates []types.TimeString,
	reservations []*domain.Reservation,
	venue *time.Location,
) []types.TimeString {
	if len(reservations) == 0 {
		return candidates
	}

	available := make([]types.TimeString, 0, len(candidates))

	for _, candidate := range candidates {
		slotStart, err := slotInstant(dateStr, candidate, venue)
		if err != nil {
			continue
		}
		slotEnd := slotStart.Add(domain.SlotStepMinutes * time.Minute)

		blocked := false
		for _, res := range reservations {
			if !res.IsActive() {
				continue
			}
			if slotStart.Before(res.End()) && res.DateTime.Before(slotEnd) {
				blocked = true
				break
			}
		}

		if !blocked {
			available = append(available, candidate)
		}
	}

	return available
}

// filterDurationFit keeps only candidates that begin an unbroken run of
// ceil(duration/30) free 30-minute cells. A gap excluded in the middle
// of the run disqualifies the start.
func filterDurationFit(candidates []types.TimeString, durationMinutes int) []types.TimeString {
	required := (durationMinutes + domain.SlotStepMinutes - 1) / domain.SlotStepMinutes
	if required <= 1 {
		return candidates
	}

	fitting := make([]types.TimeString, 0, len(candidates))

	for i := range candidates {
		if i+required > len(candidates) {
			break
		}

		firstMin, err := candidates[i].Minutes()
		if err != nil {
			continue
		}
		lastMin, err := candidates[i+required-1].Minutes()
		if err != nil {
			continue
		}

		// Contiguous iff the retained candidates are exactly 30 minutes apart
		if lastMin-firstMin == (required-1)*domain.SlotStepMinutes {
			fitting = append(fitting, candidates[i])
		}
	}

	return fitting
}

// slotInstant converts a venue-local date + wall-clock time to an
// absolute instant using the venue's fixed offset. This is the single
// conversion point between civil slot times and reservation instants.
func slotInstant(dateStr string, t types.TimeString, venue *time.Location) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, venue), nil
}
