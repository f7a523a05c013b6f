package get_available_days

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
)

const (
	msgInvalidParams     = "Paramètres de requête invalides"
	msgHostNotFound      = "Hôte introuvable"
	msgEventTypeNotFound = "Type d'événement introuvable"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/{username}/{eventSlug}/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	eventSlug := vars["eventSlug"]

	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{
		Username:  username,
		EventSlug: eventSlug,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrHostNotFound):
			h.logger.Warn("GET /public/{username}/{slug}/days - Host not found: username=%s", username)
			handlers.RespondNotFound(w, msgHostNotFound)

		case errors.Is(err, getAvailableDays.ErrEventTypeNotFound):
			h.logger.Warn("GET /public/{username}/{slug}/days - Event type not found: username=%s, slug=%s",
				username, eventSlug)
			handlers.RespondNotFound(w, msgEventTypeNotFound)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /public/{username}/{slug}/days - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /public/{username}/{slug}/days - Failed to get days: username=%s, slug=%s, error=%v",
				username, eventSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/{username}/{slug}/days - Days retrieved: username=%s, slug=%s, days_count=%d",
		username, eventSlug, len(result.AvailableDays))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
