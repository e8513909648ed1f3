package reservations

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
)

// ReservationRepository is the ledger surface used by the service
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByNumber(ctx context.Context, number string) (*domain.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	FindByStaff(ctx context.Context, filter domain.StaffReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// DirectoryClient resolves users and staff profiles for access checks
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
	GetStaff(ctx context.Context, staffID int64) (*directory.Staff, error)
}

// Logger is the logging surface for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
