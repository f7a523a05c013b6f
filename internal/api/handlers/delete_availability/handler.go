package delete_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
)

const (
	msgInvalidID     = "Identifiant de plage invalide"
	msgMissingHostID = "Authentification requise"
	msgNotFound      = "Plage horaire introuvable"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availability/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /availability/{id} - Invalid ID: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability/{id} - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	if err := h.service.Delete(r.Context(), hostID, id); err != nil {
		if errors.Is(err, availability.ErrAvailabilityNotFound) {
			h.logger.Warn("DELETE /availability/{id} - Not found: host_id=%d, id=%d", hostID, id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /availability/{id} - Failed to delete: host_id=%d, id=%d, error=%v", hostID, id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /availability/{id} - Availability deleted: host_id=%d, id=%d", hostID, id)
	handlers.RespondNoContent(w)
}
