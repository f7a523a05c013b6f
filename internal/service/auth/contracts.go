package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// HostRepository интерфейс репозитория хостов
type HostRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Host, error)
}

// PasswordHasher проверка пароля
type PasswordHasher interface {
	Compare(hash, password string) bool
}

// TokenIssuer выпуск токенов доступа
type TokenIssuer interface {
	Issue(hostID int64, email string) (string, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
