package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgMissingHostID = "Authentification requise"
	msgInvalidParams = "Paramètres de requête invalides"
	msgInvalidStatus = "Statut de réservation inconnu"
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

// Handle GET /api/v1/bookings
// Query params: status, upcoming (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hostID, ok := middleware.GetHostID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing host ID")
		handlers.RespondUnauthorized(w, msgMissingHostID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(hostID, query.Get("status"), query.Get("upcoming"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListHostBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			h.logger.Warn("GET /bookings - Invalid status: host_id=%d, error=%v", hostID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}

		h.logger.Error("GET /bookings - Failed to get bookings: host_id=%d, error=%v", hostID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: host_id=%d, count=%d", hostID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
