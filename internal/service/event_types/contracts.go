package event_types

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	Create(ctx context.Context, et *domain.EventType) (*domain.EventType, error)
	GetByID(ctx context.Context, id int64) (*domain.EventType, error)
	ListByHost(ctx context.Context, hostID int64) ([]*domain.EventType, error)
	SlugExists(ctx context.Context, hostID int64, slug string, excludeID int64) (bool, error)
	Update(ctx context.Context, et *domain.EventType) (*domain.EventType, error)
	Delete(ctx context.Context, hostID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
