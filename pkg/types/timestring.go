// Package types contains small value types shared across layers.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// minutesPerDay is the exclusive upper bound for a wall-clock offset.
// "24:00" is allowed as a window end but never as a start.
const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat is returned when a string is not a valid "HH:MM" time
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange is returned when time arithmetic leaves the 00:00-24:00 range
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString is a wall-clock time of day with minute precision, formatted
// as "HH:MM". The zero-padded format makes lexicographic comparison
// equivalent to chronological comparison, which the engine relies on.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the "HH:MM" format. "24:00" is accepted so it can
// serve as an exclusive window end.
func (t TimeString) Validate() error {
	if t == "24:00" {
		return nil
	}
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero returns true for the empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsBefore reports whether t is chronologically before other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is chronologically after other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Minutes returns the offset from midnight in minutes
func (t TimeString) Minutes() (int, error) {
	if t == "24:00" {
		return minutesPerDay, nil
	}
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time m minutes later. The result may be exactly
// "24:00" (end of day) but never past it.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes", ErrTimeOutOfRange, string(t), m)
	}
	return FromMinutes(total), nil
}

// FromMinutes builds a TimeString from an offset in minutes since midnight.
// The offset must already be in the 0-1440 range.
func FromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// Value implements driver.Valuer so TimeString can be written directly
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as
// "HH:MM:SS", so the seconds part is trimmed.
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		raw = v.Format("15:04")
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}

	if len(raw) >= 5 {
		raw = raw[:5]
	}

	ts := TimeString(raw)
	if err := ts.Validate(); err != nil {
		return err
	}
	*t = ts
	return nil
}
