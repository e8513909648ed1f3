package get_schedule

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/service/schedules/models"
)

type SchedulesService interface {
	GetByStaff(ctx context.Context, staffID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
