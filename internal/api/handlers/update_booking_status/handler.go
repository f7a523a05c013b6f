package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "Identifiant de réservation invalide"
	msgInvalidRequestBody = "Corps de requête invalide"
	msgMissingHostID      = "Authentification requise"
	msgNotFound           = "Réservation introuvable"
	msgForbidden          = "Accès refusé"
	msgInvalidStatus      = "Statut de réservation inconnu"
	msgInvalidTransition  = "Ce changement de statut n'est pas autorisé"
	msgInvalidReason      = "Motif d'annulation invalide"
	msgSlotNotAvailable   = "Ce créneau n'est plus disponible"
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

// Handle PATCH /api/v1/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, req.ToServiceRequest(hostID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%d, host_id=%d", bookingID, hostID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid reason: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReason)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/status - Slot taken: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: booking_id=%d, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
