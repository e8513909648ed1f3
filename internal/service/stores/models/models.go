package models

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
)

// Request models

// UpsertStoreRequest replaces a store record wholesale
type UpsertStoreRequest struct {
	UserID int64 `json:"userId"`

	Name            string                `json:"name"`
	Address         string                `json:"address"`
	Phone           string                `json:"phone"`
	OpeningHours    []domain.WorkingHours `json:"openingHours"`
	SpecialHolidays []string              `json:"specialHolidays"`
}

// ToDomainStore converts the request into a domain store
func (r *UpsertStoreRequest) ToDomainStore(storeID int64) *domain.Store {
	return &domain.Store{
		ID:              storeID,
		Name:            r.Name,
		Address:         r.Address,
		Phone:           r.Phone,
		OpeningHours:    r.OpeningHours,
		SpecialHolidays: r.SpecialHolidays,
	}
}

// Response models

// StoreResponse is the API view of a store
type StoreResponse struct {
	ID              int64                 `json:"id"`
	Name            string                `json:"name"`
	Address         string                `json:"address"`
	Phone           string                `json:"phone"`
	OpeningHours    []domain.WorkingHours `json:"openingHours"`
	SpecialHolidays []string              `json:"specialHolidays"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// FromDomainStore converts a domain store into the API view
func FromDomainStore(s *domain.Store) *StoreResponse {
	return &StoreResponse{
		ID:              s.ID,
		Name:            s.Name,
		Address:         s.Address,
		Phone:           s.Phone,
		OpeningHours:    s.OpeningHours,
		SpecialHolidays: s.SpecialHolidays,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
