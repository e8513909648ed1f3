package get_store

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/service/stores/models"
)

type StoresService interface {
	Get(ctx context.Context, storeID int64) (*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
