package upsert_schedule

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

// Request replaces a staff member's schedule wholesale. Partial edits
// are expressed by sending the full desired state.
type Request struct {
	ActingUserID int64
	StaffID      int64

	WorkingHours    []domain.WorkingHours
	SpecialHolidays []string
	SpecialWorkdays []domain.SpecialWorkday
}

// Response is the stored schedule after the write
type Response struct {
	ID              int64
	StaffID         int64
	WorkingHours    []domain.WorkingHours
	SpecialHolidays []string
	SpecialWorkdays []domain.SpecialWorkday
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
