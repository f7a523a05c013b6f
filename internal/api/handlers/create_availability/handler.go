package create_availability

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
	msgInvalidSchedule    = "Plage horaire invalide"
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

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	var req models.CreateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.HostID = hostID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("POST /availability - Invalid schedule: host_id=%d, error=%v", hostID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)
			return
		}

		h.logger.Error("POST /availability - Failed to create availability: host_id=%d, error=%v", hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /availability - Availability created: host_id=%d, id=%d", hostID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
