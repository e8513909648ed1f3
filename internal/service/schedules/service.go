package schedules

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/schedule"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/schedules/models"
)

// Service exposes schedule reads for the settings UI
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService creates the schedules service
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetByStaff fetches the schedule of one staff member
func (s *Service) GetByStaff(ctx context.Context, staffID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByStaff: fetching schedule for staff=%d", staffID)

	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	schedule, err := s.scheduleRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByStaff: schedule for staff=%d not found", staffID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByStaff: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetByStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}
