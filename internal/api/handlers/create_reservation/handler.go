package create_reservation

import (
	"errors"
	"net/http"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	"github.com/ymgn-dev/SLB-ReservationService/internal/api/middleware"
	createReservation "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidBody      = "invalid request body"
	msgMissingUserID    = "missing user ID"
	msgStoreNotFound    = "store not found"
	msgStaffNotFound    = "staff not found"
	msgCustomerNotFound = "customer not found"
	msgSlotTaken        = "requested time is no longer available"
	msgPastDateTime     = "reservation time is in the past"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		respondUseCaseError(w, h.logger, "POST /reservations", err)
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, number=%s, customer=%d",
		result.ID, result.ReservationNumber, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondUseCaseError maps booking use case errors to HTTP statuses
func respondUseCaseError(w http.ResponseWriter, logger Logger, route string, err error) {
	switch {
	case errors.Is(err, createReservation.ErrSlotTaken):
		logger.Warn("%s - Slot taken: %v", route, err)
		handlers.RespondConflict(w, msgSlotTaken)

	case errors.Is(err, createReservation.ErrStoreNotFound):
		logger.Warn("%s - Store not found", route)
		handlers.RespondNotFound(w, msgStoreNotFound)

	case errors.Is(err, createReservation.ErrStaffNotFound):
		logger.Warn("%s - Staff not found", route)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, createReservation.ErrCustomerNotFound):
		logger.Warn("%s - Customer not found", route)
		handlers.RespondNotFound(w, msgCustomerNotFound)

	case errors.Is(err, createReservation.ErrPastDateTime):
		logger.Warn("%s - Reservation time in the past", route)
		handlers.RespondBadRequest(w, msgPastDateTime)

	case errors.Is(err, createReservation.ErrInvalidInput):
		logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBody)

	default:
		logger.Error("%s - Failed to create reservation: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
