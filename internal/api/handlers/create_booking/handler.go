package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide"
	msgInvalidData        = "Données de réservation invalides"
	msgHostNotFound       = "Hôte introuvable"
	msgEventTypeNotFound  = "Type d'événement introuvable"
	msgInvalidBookingDate = "Date de réservation invalide"
	msgDateTooFar         = "Cette date est trop éloignée dans le futur"
	msgInvalidTimeSlot    = "Ce créneau ne fait pas partie des disponibilités"
	msgTooLateToBook      = "Il est trop tard pour réserver ce créneau"
	msgSlotNotAvailable   = "Ce créneau n'est plus disponible"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/{username}/{eventSlug}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	eventSlug := vars["eventSlug"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/{username}/{slug}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(username, eventSlug))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable),
			errors.Is(err, createBooking.ErrBookingInProgress):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Slot not available: username=%s, slug=%s, date=%s, time=%s",
				username, eventSlug, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrHostNotFound):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Host not found: username=%s", username)
			handlers.RespondNotFound(w, msgHostNotFound)

		case errors.Is(err, createBooking.ErrEventTypeNotFound):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Event type not found: username=%s, slug=%s",
				username, eventSlug)
			handlers.RespondNotFound(w, msgEventTypeNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Invalid time slot: date=%s, time=%s",
				req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Too late to book: date=%s, time=%s",
				req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /public/{username}/{slug}/bookings - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /public/{username}/{slug}/bookings - Failed to create booking: username=%s, slug=%s, error=%v",
				username, eventSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /public/{username}/{slug}/bookings - Booking created: booking_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
