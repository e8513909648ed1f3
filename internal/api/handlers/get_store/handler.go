package get_store

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/stores"
)

const (
	msgInvalidStoreID = "invalid store ID"
	msgNotFound       = "store not found"
)

type Handler struct {
	service StoresService
	logger  Logger
}

func NewHandler(service StoresService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id} - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	store, err := h.service.Get(r.Context(), storeID)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id} - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stores.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStoreID)

		default:
			h.logger.Error("GET /stores/{id} - Failed to get store: store_id=%d, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id} - Store retrieved: store_id=%d", storeID)
	handlers.RespondJSON(w, http.StatusOK, store)
}
