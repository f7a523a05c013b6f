package middleware

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/auth"
)

// TokenParser проверяет токен доступа хоста
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// MetricsCollector принимает метрики HTTP запросов
type MetricsCollector interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
