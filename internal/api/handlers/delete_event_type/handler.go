package delete_event_type

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	eventTypes "github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
)

const (
	msgInvalidID     = "Identifiant de type d'événement invalide"
	msgMissingHostID = "Authentification requise"
	msgNotFound      = "Type d'événement introuvable"
)

type Handler struct {
	service EventTypeService
	logger  Logger
}

func NewHandler(service EventTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/event-types/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /event-types/{id} - Invalid ID: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /event-types/{id} - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	if err := h.service.Delete(r.Context(), hostID, id); err != nil {
		if errors.Is(err, eventTypes.ErrEventTypeNotFound) {
			h.logger.Warn("DELETE /event-types/{id} - Not found: host_id=%d, id=%d", hostID, id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /event-types/{id} - Failed to delete: host_id=%d, id=%d, error=%v", hostID, id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /event-types/{id} - Event type deleted: host_id=%d, id=%d", hostID, id)
	handlers.RespondNoContent(w)
}
