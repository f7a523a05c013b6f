package availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error)
	ListByHost(ctx context.Context, hostID int64) ([]*domain.Availability, error)
	DeleteByHost(ctx context.Context, hostID int64) error
	Delete(ctx context.Context, hostID, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
