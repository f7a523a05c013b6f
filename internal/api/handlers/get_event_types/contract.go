package get_event_types

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
)

type EventTypeService interface {
	List(ctx context.Context, hostID int64) (*models.EventTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
