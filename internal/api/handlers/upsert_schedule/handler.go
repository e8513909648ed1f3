package upsert_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	"github.com/ymgn-dev/SLB-ReservationService/internal/api/middleware"
	upsertSchedule "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/upsert_schedule"
)

const (
	msgInvalidStaffID = "invalid staff ID"
	msgInvalidBody    = "invalid request body"
	msgMissingUserID  = "missing user ID"
	msgStaffNotFound  = "staff not found"
	msgUserNotFound   = "user not found"
	msgForbidden      = "not allowed to edit this schedule"
)

type Handler struct {
	useCase UpsertScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpsertScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/schedule - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /staff/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpsertScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, upsertSchedule.ErrUnauthorized):
			h.logger.Warn("PUT /staff/{id}/schedule - Access denied: staff_id=%d, user_id=%d", staffID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, upsertSchedule.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/{id}/schedule - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, upsertSchedule.ErrUserNotFound):
			h.logger.Warn("PUT /staff/{id}/schedule - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, upsertSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/schedule - Invalid input: staff_id=%d: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("PUT /staff/{id}/schedule - Failed to upsert schedule: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/schedule - Schedule upserted: staff_id=%d by user_id=%d", staffID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
