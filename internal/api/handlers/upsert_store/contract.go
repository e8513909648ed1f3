package upsert_store

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/service/stores/models"
)

type StoresService interface {
	Upsert(ctx context.Context, storeID int64, req *models.UpsertStoreRequest) (*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
