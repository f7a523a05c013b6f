package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate       = "La date est requise"
	msgInvalidDate       = "Date invalide, format attendu AAAA-MM-JJ"
	msgInvalidParams     = "Paramètres de requête invalides"
	msgHostNotFound      = "Hôte introuvable"
	msgEventTypeNotFound = "Type d'événement introuvable"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/{username}/{eventSlug}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	eventSlug := vars["eventSlug"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /public/{username}/{slug}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(username, eventSlug, dateStr))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /public/{username}/{slug}/slots - Invalid date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrHostNotFound):
			h.logger.Warn("GET /public/{username}/{slug}/slots - Host not found: username=%s", username)
			handlers.RespondNotFound(w, msgHostNotFound)

		case errors.Is(err, getAvailableSlots.ErrEventTypeNotFound):
			h.logger.Warn("GET /public/{username}/{slug}/slots - Event type not found: username=%s, slug=%s",
				username, eventSlug)
			handlers.RespondNotFound(w, msgEventTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /public/{username}/{slug}/slots - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /public/{username}/{slug}/slots - Failed to get slots: username=%s, slug=%s, date=%s, error=%v",
				username, eventSlug, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/{username}/{slug}/slots - Slots retrieved: username=%s, slug=%s, date=%s, slots_count=%d",
		username, eventSlug, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
