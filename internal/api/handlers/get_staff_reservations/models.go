package get_staff_reservations

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations/models"
)

// ToServiceRequest builds the service request from query parameters.
// The date range is inclusive; endDate covers the whole day.
func ToServiceRequest(userID, staffID int64, startDateStr, endDateStr string, includeCanceled bool) (*models.GetStaffReservationsRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &models.GetStaffReservationsRequest{
		UserID:          userID,
		StaffID:         staffID,
		From:            startDate,
		To:              endDate.AddDate(0, 0, 1).Add(-time.Second),
		IncludeCanceled: includeCanceled,
	}, nil
}
