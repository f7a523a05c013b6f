package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide"
	msgInvalidReason      = "Motif d'annulation invalide"
	msgNotFound           = "Réservation introuvable"
	msgAlreadyCancelled   = "Cette réservation est déjà annulée"
	msgCannotCancel       = "Cette réservation ne peut plus être annulée"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/bookings/{token}/cancel
// Тело запроса опционально: {"reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /public/bookings/{token}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.CancelByToken(r.Context(), req.ToServiceRequest(token))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /public/bookings/{token}/cancel - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("POST /public/bookings/{token}/cancel - Already cancelled")
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /public/bookings/{token}/cancel - Cannot cancel: %v", err)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /public/bookings/{token}/cancel - Invalid reason: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("POST /public/bookings/{token}/cancel - Failed to cancel booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /public/bookings/{token}/cancel - Booking cancelled: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
