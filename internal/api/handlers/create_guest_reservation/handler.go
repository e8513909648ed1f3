package create_guest_reservation

import (
	"errors"
	"net/http"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	createReservation "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidBody   = "invalid request body"
	msgStoreNotFound = "store not found"
	msgStaffNotFound = "staff not found"
	msgSlotTaken     = "requested time is no longer available"
	msgPastDateTime  = "reservation time is in the past"
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

// Handle POST /api/v1/guest-reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guest-reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /guest-reservations - Slot taken: staff_id=%d", req.StaffID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrStoreNotFound):
			h.logger.Warn("POST /guest-reservations - Store not found: store_id=%d", req.StoreID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, createReservation.ErrStaffNotFound):
			h.logger.Warn("POST /guest-reservations - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createReservation.ErrPastDateTime):
			h.logger.Warn("POST /guest-reservations - Reservation time in the past")
			handlers.RespondBadRequest(w, msgPastDateTime)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /guest-reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("POST /guest-reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guest-reservations - Reservation created: id=%d, number=%s",
		result.ID, result.ReservationNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
