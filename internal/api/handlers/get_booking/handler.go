package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const msgNotFound = "Réservation introuvable"

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

// Handle GET /api/v1/public/bookings/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	booking, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /public/bookings/{token} - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /public/bookings/{token} - Failed to get booking: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /public/bookings/{token} - Booking retrieved: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
