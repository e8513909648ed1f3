package schedules

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

// ScheduleRepository is the schedule read surface used by the service
type ScheduleRepository interface {
	GetByStaffID(ctx context.Context, staffID int64) (*domain.Schedule, error)
}

// Logger is the logging surface for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
