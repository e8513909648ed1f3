package domain

import "time"

// Store is the venue-level configuration: opening hours by weekday and
// full-day closures.
type Store struct {
	ID      int64
	Name    string
	Address string
	Phone   string

	OpeningHours    []WorkingHours
	SpecialHolidays []string // YYYY-MM-DD, store closed

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the opening-hours pattern and holiday dates
func (s *Store) Validate() error {
	if err := ValidateWeeklyPattern(s.OpeningHours); err != nil {
		return err
	}
	for _, d := range s.SpecialHolidays {
		if err := ValidateDate(d); err != nil {
			return err
		}
	}
	return nil
}

// IsHoliday reports whether the store is closed on the date
func (s *Store) IsHoliday(date string) bool {
	for _, d := range s.SpecialHolidays {
		if d == date {
			return true
		}
	}
	return false
}

// OpeningHoursFor returns the opening window for the weekday, or nil
// when the store is closed that weekday.
func (s *Store) OpeningHoursFor(dayOfWeek int) *WorkingHours {
	for i := range s.OpeningHours {
		if s.OpeningHours[i].DayOfWeek == dayOfWeek {
			return &s.OpeningHours[i]
		}
	}
	return nil
}
