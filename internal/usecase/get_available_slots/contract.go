package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// HostRepository интерфейс репозитория хостов
type HostRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Host, error)
}

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	GetActiveBySlug(ctx context.Context, hostID int64, slug string) (*domain.EventType, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	ListActiveByHost(ctx context.Context, hostID int64) ([]*domain.Availability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListConfirmedStartingBetween получает подтвержденные бронирования хоста с началом в [from, to)
	ListConfirmedStartingBetween(ctx context.Context, hostID int64, from, to time.Time) ([]*domain.Booking, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	SlotsReturned(eventSlug string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
