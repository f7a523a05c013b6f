package replace_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

const (
	msgMissingHostID      = "Authentification requise"
	msgInvalidRequestBody = "Corps de requête invalide"
	msgInvalidSchedule    = "Une des plages horaires est invalide"
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

// Handle PUT /api/v1/availability
// Полностью заменяет расписание хоста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("PUT /availability - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	var req models.ReplaceAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.HostID = hostID

	result, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("PUT /availability - Invalid schedule: host_id=%d, error=%v", hostID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)
			return
		}

		h.logger.Error("PUT /availability - Failed to replace availability: host_id=%d, error=%v", hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /availability - Availability replaced: host_id=%d, count=%d", hostID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
