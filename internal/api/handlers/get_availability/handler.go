package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
)

const msgMissingHostID = "Authentification requise"

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

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	result, err := h.service.List(r.Context(), hostID)
	if err != nil {
		h.logger.Error("GET /availability - Failed to get availability: host_id=%d, error=%v", hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: host_id=%d, count=%d", hostID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
