package get_guest_reservation

import (
	"context"

	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByNumber(ctx context.Context, number string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
