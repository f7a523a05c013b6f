package register_host

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// HostRepository интерфейс репозитория хостов
type HostRepository interface {
	Create(ctx context.Context, host *domain.Host) (*domain.Host, error)
	GetByEmail(ctx context.Context, email string) (*domain.Host, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error)
}

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	Create(ctx context.Context, et *domain.EventType) (*domain.EventType, error)
}

// PasswordHasher хеширование паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
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
