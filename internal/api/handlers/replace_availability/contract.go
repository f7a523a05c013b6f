package replace_availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Replace(ctx context.Context, req *models.ReplaceAvailabilityRequest) (*models.AvailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
