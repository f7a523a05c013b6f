package update_booking_status

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status       string  `json:"status"` // confirmed, cancelled, completed
	CancelReason *string `json:"cancelReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(hostID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		HostID:       hostID,
		Status:       r.Status,
		CancelReason: r.CancelReason,
	}
}
