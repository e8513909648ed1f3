package get_staff_reservations

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetStaffReservations(ctx context.Context, req *models.GetStaffReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
