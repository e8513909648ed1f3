package get_available_slots

import (
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	getAvailableSlots "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model. Slots maps every date in
// the requested range to an ordered list of "HH:MM" start times; a day
// with nothing bookable maps to an empty list.
type AvailableSlotsResponse struct {
	StaffID int64               `json:"staffId"`
	StoreID int64               `json:"storeId"`
	Slots   map[string][]string `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response, storeID int64) *AvailableSlotsResponse {
	slots := make(map[string][]string, len(resp.Slots))
	for date, times := range resp.Slots {
		list := make([]string, len(times))
		for i, t := range times {
			list[i] = t.String()
		}
		slots[date] = list
	}

	return &AvailableSlotsResponse{
		StaffID: resp.StaffID,
		StoreID: storeID,
		Slots:   slots,
	}
}

// ToUseCaseRequest builds the use case request from path and query values
func ToUseCaseRequest(staffID, storeID int64, startDateStr, endDateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StaffID:         staffID,
		StoreID:         storeID,
		StartDate:       startDate,
		EndDate:         endDate,
		DurationMinutes: durationMinutes,
	}, nil
}
