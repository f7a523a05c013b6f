package create_event_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	eventTypes "github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

const (
	msgMissingHostID      = "Authentification requise"
	msgInvalidRequestBody = "Corps de requête invalide"
	msgInvalidData        = "Données du type d'événement invalides"
	msgDuplicateSlug      = "Un type d'événement avec ce lien existe déjà"
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

// Handle POST /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("POST /event-types - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	var req models.CreateEventTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /event-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.HostID = hostID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, eventTypes.ErrInvalidInput):
			h.logger.Warn("POST /event-types - Invalid data: host_id=%d, error=%v", hostID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, eventTypes.ErrDuplicateSlug):
			h.logger.Warn("POST /event-types - Duplicate slug: host_id=%d", hostID)
			handlers.RespondConflict(w, msgDuplicateSlug)

		default:
			h.logger.Error("POST /event-types - Failed to create event type: host_id=%d, error=%v", hostID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /event-types - Event type created: host_id=%d, id=%d, slug=%s", hostID, result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
