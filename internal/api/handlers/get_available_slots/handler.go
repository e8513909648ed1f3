package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStoreID   = "invalid store ID"
	msgInvalidStaffID   = "invalid staff ID"
	msgMissingStartDate = "startDate is required"
	msgMissingEndDate   = "endDate is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration  = "invalid durationMinutes"
	msgInvalidRange     = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/staff/{staffId}/available-slots
// Query params: startDate, endDate (required, YYYY-MM-DD),
// durationMinutes (optional, defaults to one 30-minute slot)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/staff/{id}/available-slots - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/staff/{id}/available-slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	if startDateStr == "" {
		h.logger.Warn("GET /stores/{id}/staff/{id}/available-slots - Missing start date")
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}

	endDateStr := r.URL.Query().Get("endDate")
	if endDateStr == "" {
		h.logger.Warn("GET /stores/{id}/staff/{id}/available-slots - Missing end date")
		handlers.RespondBadRequest(w, msgMissingEndDate)
		return
	}

	durationMinutes := 30
	if durationStr := r.URL.Query().Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /stores/{id}/staff/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(staffID, storeID, startDateStr, endDateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/staff/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/staff/{id}/available-slots - Invalid input: staff_id=%d, store_id=%d: %v",
				staffID, storeID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /stores/{id}/staff/{id}/available-slots - Failed to compute slots: staff_id=%d, store_id=%d, error=%v",
				staffID, storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/staff/{id}/available-slots - Slots computed: staff_id=%d, store_id=%d, days=%d",
		staffID, storeID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, storeID))
}
