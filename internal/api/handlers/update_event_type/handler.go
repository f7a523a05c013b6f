package update_event_type

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	eventTypes "github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

const (
	msgInvalidID          = "Identifiant de type d'événement invalide"
	msgMissingHostID      = "Authentification requise"
	msgInvalidRequestBody = "Corps de requête invalide"
	msgNotFound           = "Type d'événement introuvable"
	msgInvalidData        = "Données du type d'événement invalides"
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

// Handle PUT /api/v1/event-types/{id}
// Частичное обновление: меняются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /event-types/{id} - Invalid ID: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("PUT /event-types/{id} - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	var req models.UpdateEventTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /event-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.HostID = hostID

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, eventTypes.ErrEventTypeNotFound):
			h.logger.Warn("PUT /event-types/{id} - Not found: host_id=%d, id=%d", hostID, id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, eventTypes.ErrInvalidInput):
			h.logger.Warn("PUT /event-types/{id} - Invalid data: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /event-types/{id} - Failed to update event type: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /event-types/{id} - Event type updated: host_id=%d, id=%d", hostID, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
