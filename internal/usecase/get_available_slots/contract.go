package get_available_slots

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

// ScheduleRepository is the schedule read surface the engine needs
type ScheduleRepository interface {
	GetByStaffID(ctx context.Context, staffID int64) (*domain.Schedule, error)
}

// StoreRepository is the store read surface the engine needs
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// ReservationRepository is the ledger query surface the engine needs
type ReservationRepository interface {
	FindByStaff(ctx context.Context, filter domain.StaffReservationsFilter) ([]*domain.Reservation, error)
}

// Logger is the logging surface for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
