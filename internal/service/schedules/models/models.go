package models

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

// ScheduleResponse is the API view of a staff schedule
type ScheduleResponse struct {
	ID              int64                   `json:"id"`
	StaffID         int64                   `json:"staffId"`
	WorkingHours    []domain.WorkingHours   `json:"workingHours"`
	SpecialHolidays []string                `json:"specialHolidays"`
	SpecialWorkdays []domain.SpecialWorkday `json:"specialWorkdays"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// FromDomainSchedule converts a domain schedule into the API view
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:              s.ID,
		StaffID:         s.StaffID,
		WorkingHours:    s.WorkingHours,
		SpecialHolidays: s.SpecialHolidays,
		SpecialWorkdays: s.SpecialWorkdays,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
