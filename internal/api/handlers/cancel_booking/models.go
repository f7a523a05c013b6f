package cancel_booking

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(token string) *models.CancelByTokenRequest {
	return &models.CancelByTokenRequest{
		Token:  token,
		Reason: r.Reason,
	}
}
