package create_booking

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
	ListConfirmedStartingBetween(ctx context.Context, hostID int64, from, to time.Time) ([]*domain.Booking, error)
	HasOverlap(ctx context.Context, hostID int64, start, end time.Time, excludeID int64) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Locker короткая блокировка бронирований хоста
type Locker interface {
	Acquire(ctx context.Context, hostID int64) (func(), error)
}

// Notifier постановка писем о новом бронировании
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, n *domain.BookingNotification) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	BookingCreated(status string)
	BookingConflict(stage string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
