package create_reservation

import (
	"context"
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
)

// ReservationRepository is the ledger surface for booking
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindByStaff(ctx context.Context, filter domain.StaffReservationsFilter) ([]*domain.Reservation, error)
}

// StoreRepository is the store read surface for booking
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// DirectoryClient resolves staff profiles and user accounts
type DirectoryClient interface {
	GetStaff(ctx context.Context, staffID int64) (*directory.Staff, error)
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
}

// TransactionManager runs the conflict re-check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
