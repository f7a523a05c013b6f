package register_host

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	registerHost "github.com/m04kA/SMC-SchedulingService/internal/usecase/register_host"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide"
	msgInvalidData        = "Nom ou email invalide"
	msgPasswordTooShort   = "Le mot de passe doit contenir au moins 6 caractères"
	msgEmailTaken         = "Un compte existe déjà avec cet email"
)

type Handler struct {
	useCase RegisterHostUseCase
	logger  Logger
}

func NewHandler(useCase RegisterHostUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerHost.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email already registered")
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, registerHost.ErrPasswordTooShort):
			h.logger.Warn("POST /auth/register - Password too short")
			handlers.RespondBadRequest(w, msgPasswordTooShort)

		case errors.Is(err, registerHost.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /auth/register - Failed to register host: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Host registered: host_id=%d, username=%s", result.ID, result.Username)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
