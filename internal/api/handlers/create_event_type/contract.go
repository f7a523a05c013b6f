package create_event_type

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

type EventTypeService interface {
	Create(ctx context.Context, req *models.CreateEventTypeRequest) (*models.EventTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
