package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/pkg/types"
)

var (
	// ErrInvalidWindow is returned when a window's start is not before its end
	ErrInvalidWindow = errors.New("domain: window start must be before end")

	// ErrDuplicateDayOfWeek is returned when a weekday appears twice in a pattern
	ErrDuplicateDayOfWeek = errors.New("domain: duplicate dayOfWeek entry")

	// ErrInvalidDayOfWeek is returned when dayOfWeek is outside 0-6
	ErrInvalidDayOfWeek = errors.New("domain: dayOfWeek must be between 0 and 6")

	// ErrInvalidDate is returned when a calendar date is not YYYY-MM-DD
	ErrInvalidDate = errors.New("domain: invalid date, expected YYYY-MM-DD")
)

// WorkingHours is one weekday's open window within a weekly pattern.
// DayOfWeek follows time.Weekday numbering: 0 = Sunday ... 6 = Saturday.
type WorkingHours struct {
	DayOfWeek int              `json:"dayOfWeek"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Validate checks the weekday range and the window orientation.
// Midnight-crossing windows are rejected here, so no downstream code
// needs to handle wrap-around.
func (w WorkingHours) Validate() error {
	if w.DayOfWeek < MinDayOfWeek || w.DayOfWeek > MaxDayOfWeek {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfWeek, w.DayOfWeek)
	}
	if err := w.StartTime.Validate(); err != nil {
		return err
	}
	if err := w.EndTime.Validate(); err != nil {
		return err
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: %s-%s on dayOfWeek %d", ErrInvalidWindow, w.StartTime, w.EndTime, w.DayOfWeek)
	}
	return nil
}

// ValidateWeeklyPattern checks every window and the at-most-one-entry-per-weekday rule
func ValidateWeeklyPattern(pattern []WorkingHours) error {
	seen := make(map[int]bool, len(pattern))
	for _, wh := range pattern {
		if err := wh.Validate(); err != nil {
			return err
		}
		if seen[wh.DayOfWeek] {
			return fmt.Errorf("%w: dayOfWeek %d", ErrDuplicateDayOfWeek, wh.DayOfWeek)
		}
		seen[wh.DayOfWeek] = true
	}
	return nil
}

// SpecialWorkday is a per-date window that replaces the weekly pattern
// for that date.
type SpecialWorkday struct {
	Date      string           `json:"date"` // YYYY-MM-DD
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Validate checks the date format and the window orientation
func (s SpecialWorkday) Validate() error {
	if err := ValidateDate(s.Date); err != nil {
		return err
	}
	if err := s.StartTime.Validate(); err != nil {
		return err
	}
	if err := s.EndTime.Validate(); err != nil {
		return err
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("%w: %s-%s on %s", ErrInvalidWindow, s.StartTime, s.EndTime, s.Date)
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD format
func ValidateDate(date string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// Schedule is one staff member's recurring availability configuration.
// At most one Schedule exists per staff member; a staff member without
// one is fully unavailable.
type Schedule struct {
	ID              int64
	StaffID         int64
	WorkingHours    []WorkingHours
	SpecialHolidays []string // YYYY-MM-DD, fully unavailable
	SpecialWorkdays []SpecialWorkday

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks every embedded window and date
func (s *Schedule) Validate() error {
	if err := ValidateWeeklyPattern(s.WorkingHours); err != nil {
		return err
	}
	for _, d := range s.SpecialHolidays {
		if err := ValidateDate(d); err != nil {
			return err
		}
	}
	for _, w := range s.SpecialWorkdays {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsHoliday reports whether the staff member is fully off on the date
func (s *Schedule) IsHoliday(date string) bool {
	for _, d := range s.SpecialHolidays {
		if d == date {
			return true
		}
	}
	return false
}

// WorkdayOverride returns the per-date window replacing the weekly
// pattern for the date, or nil when none exists.
func (s *Schedule) WorkdayOverride(date string) *SpecialWorkday {
	for i := range s.SpecialWorkdays {
		if s.SpecialWorkdays[i].Date == date {
			return &s.SpecialWorkdays[i]
		}
	}
	return nil
}

// WorkingHoursFor returns the weekly window for the weekday, or nil.
// An absent entry means the staff member does not work that weekday.
func (s *Schedule) WorkingHoursFor(dayOfWeek int) *WorkingHours {
	for i := range s.WorkingHours {
		if s.WorkingHours[i].DayOfWeek == dayOfWeek {
			return &s.WorkingHours[i]
		}
	}
	return nil
}
