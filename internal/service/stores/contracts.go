package stores

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
)

// StoreRepository is the store persistence surface used by the service
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) (*domain.Store, error)
}

// DirectoryClient resolves the acting user for the admin check
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
}

// Logger is the logging surface for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
