package get_event_types

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
)

const msgMissingHostID = "Authentification requise"

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

// Handle GET /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("GET /event-types - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	result, err := h.service.List(r.Context(), hostID)
	if err != nil {
		h.logger.Error("GET /event-types - Failed to get event types: host_id=%d, error=%v", hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /event-types - Event types retrieved: host_id=%d, count=%d", hostID, len(result.EventTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
