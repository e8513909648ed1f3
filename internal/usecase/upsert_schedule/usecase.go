package upsert_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
)

// UseCase replaces a staff schedule after an authorization check
// against the directory service.
type UseCase struct {
	scheduleRepo ScheduleRepository
	directory    DirectoryClient
	logger       Logger
}

// NewUseCase creates the schedule upsert use case
func NewUseCase(scheduleRepo ScheduleRepository, directoryClient DirectoryClient, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		directory:    directoryClient,
		logger:       logger,
	}
}

// Execute verifies the acting user may edit the target schedule, then
// replaces the stored schedule wholesale.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpsertSchedule: actor=%d, staff=%d", req.ActingUserID, req.StaffID)

	if req.ActingUserID <= 0 {
		return nil, fmt.Errorf("%w: actingUserId must be positive", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	actor, err := uc.directory.GetUser(ctx, req.ActingUserID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Error("UpsertSchedule: failed to get user id=%d: %v", req.ActingUserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	staff, err := uc.directory.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, directory.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("UpsertSchedule: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() && staff.UserID != actor.ID {
		uc.logger.Warn("UpsertSchedule: user id=%d is not allowed to edit schedule of staff=%d",
			req.ActingUserID, req.StaffID)
		return nil, ErrUnauthorized
	}

	schedule := &domain.Schedule{
		StaffID:         req.StaffID,
		WorkingHours:    req.WorkingHours,
		SpecialHolidays: req.SpecialHolidays,
		SpecialWorkdays: req.SpecialWorkdays,
	}
	if err := schedule.Validate(); err != nil {
		uc.logger.Warn("UpsertSchedule: validation failed for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := uc.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		uc.logger.Error("UpsertSchedule: failed to upsert schedule for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to upsert schedule: %v", ErrInternal, err)
	}

	uc.logger.Info("UpsertSchedule: stored schedule id=%d for staff=%d", stored.ID, stored.StaffID)

	return &Response{
		ID:              stored.ID,
		StaffID:         stored.StaffID,
		WorkingHours:    stored.WorkingHours,
		SpecialHolidays: stored.SpecialHolidays,
		SpecialWorkdays: stored.SpecialWorkdays,
		CreatedAt:       stored.CreatedAt,
		UpdatedAt:       stored.UpdatedAt,
	}, nil
}
