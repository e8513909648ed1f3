package get_guest_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations"
)

const (
	msgInvalidNumber = "invalid reservation number"
	msgNotFound      = "reservation not found"
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

// Handle GET /api/v1/guest-reservations/{reservationNumber}
// The booking reference acts as the guest's credential.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number := vars["reservationNumber"]

	reservation, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /guest-reservations/{number} - Not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /guest-reservations/{number} - Invalid number: %s", number)
			handlers.RespondBadRequest(w, msgInvalidNumber)

		default:
			h.logger.Error("GET /guest-reservations/{number} - Failed to get reservation: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guest-reservations/{number} - Reservation retrieved: number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
