package get_staff_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	"github.com/ymgn-dev/SLB-ReservationService/internal/api/middleware"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations"
)

const (
	msgInvalidStaffID   = "invalid staff ID"
	msgMissingUserID    = "missing user ID"
	msgMissingStartDate = "startDate is required"
	msgMissingEndDate   = "endDate is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange     = "invalid date range"
	msgForbidden        = "access denied"
	msgStaffNotFound    = "staff not found"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/reservations
// Query params: startDate, endDate (required, YYYY-MM-DD),
// includeCanceled (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/reservations - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /staff/{id}/reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	if startDateStr == "" {
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}
	endDateStr := r.URL.Query().Get("endDate")
	if endDateStr == "" {
		handlers.RespondBadRequest(w, msgMissingEndDate)
		return
	}
	includeCanceled := r.URL.Query().Get("includeCanceled") == "true"

	req, err := ToServiceRequest(userID, staffID, startDateStr, endDateStr, includeCanceled)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/reservations - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetStaffReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /staff/{id}/reservations - Access denied: staff_id=%d, user_id=%d", staffID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/reservations - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/reservations - Invalid range: staff_id=%d: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /staff/{id}/reservations - Failed to get reservations: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/reservations - Retrieved %d reservations for staff_id=%d", result.Total, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
