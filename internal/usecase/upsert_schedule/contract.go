package upsert_schedule

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
)

// ScheduleRepository is the schedule write surface
type ScheduleRepository interface {
	Upsert(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
}

// DirectoryClient resolves the acting user and the target staff profile
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
	GetStaff(ctx context.Context, staffID int64) (*directory.Staff, error)
}

// Logger is the logging surface for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
