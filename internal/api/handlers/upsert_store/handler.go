package upsert_store

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers"
	"github.com/ymgn-dev/SLB-ReservationService/internal/api/middleware"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/stores"
)

const (
	msgInvalidStoreID = "invalid store ID"
	msgInvalidBody    = "invalid request body"
	msgMissingUserID  = "missing user ID"
	msgForbidden      = "admin access required"
	msgUserNotFound   = "user not found"
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

// Handle PUT /api/v1/stores/{storeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stores/{id} - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /stores/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpsertStoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	store, err := h.service.Upsert(r.Context(), storeID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrAccessDenied):
			h.logger.Warn("PUT /stores/{id} - Access denied: store_id=%d, user_id=%d", storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, stores.ErrUserNotFound):
			h.logger.Warn("PUT /stores/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, stores.ErrInvalidInput):
			h.logger.Warn("PUT /stores/{id} - Invalid input: store_id=%d: %v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("PUT /stores/{id} - Failed to upsert store: store_id=%d, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stores/{id} - Store upserted: store_id=%d by user_id=%d", storeID, userID)
	handlers.RespondJSON(w, http.StatusOK, store)
}
