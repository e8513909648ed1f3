package upsert_store

import (
	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/stores/models"
)

// UpsertStoreRequest HTTP request model
type UpsertStoreRequest struct {
	Name            string                `json:"name"`
	Address         string                `json:"address"`
	Phone           string                `json:"phone"`
	OpeningHours    []domain.WorkingHours `json:"openingHours"`
	SpecialHolidays []string              `json:"specialHolidays"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *UpsertStoreRequest) ToServiceRequest(userID int64) *models.UpsertStoreRequest {
	return &models.UpsertStoreRequest{
		UserID:          userID,
		Name:            r.Name,
		Address:         r.Address,
		Phone:           r.Phone,
		OpeningHours:    r.OpeningHours,
		SpecialHolidays: r.SpecialHolidays,
	}
}
