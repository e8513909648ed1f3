package upsert_schedule

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	upsertSchedule "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/upsert_schedule"
)

// UpsertScheduleRequest HTTP request model. The schedule is replaced
// wholesale; clients send the full desired state.
type UpsertScheduleRequest struct {
	WorkingHours    []domain.WorkingHours   `json:"workingHours"`
	SpecialHolidays []string                `json:"specialHolidays"`
	SpecialWorkdays []domain.SpecialWorkday `json:"specialWorkdays"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID              int64                   `json:"id"`
	StaffID         int64                   `json:"staffId"`
	WorkingHours    []domain.WorkingHours   `json:"workingHours"`
	SpecialHolidays []string                `json:"specialHolidays"`
	SpecialWorkdays []domain.SpecialWorkday `json:"specialWorkdays"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *upsertSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ID:              resp.ID,
		StaffID:         resp.StaffID,
		WorkingHours:    resp.WorkingHours,
		SpecialHolidays: resp.SpecialHolidays,
		SpecialWorkdays: resp.SpecialWorkdays,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *UpsertScheduleRequest) ToUseCaseRequest(actingUserID, staffID int64) *upsertSchedule.Request {
	return &upsertSchedule.Request{
		ActingUserID:    actingUserID,
		StaffID:         staffID,
		WorkingHours:    r.WorkingHours,
		SpecialHolidays: r.SpecialHolidays,
		SpecialWorkdays: r.SpecialWorkdays,
	}
}
