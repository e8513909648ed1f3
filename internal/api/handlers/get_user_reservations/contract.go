package get_user_reservations

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetCustomerReservations(ctx context.Context, req *models.GetCustomerReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
