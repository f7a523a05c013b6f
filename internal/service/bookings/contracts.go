package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error)
	ListByHost(ctx context.Context, filter domain.HostBookingsFilter) ([]*domain.Booking, error)
	HasOverlap(ctx context.Context, hostID int64, start, end time.Time, excludeID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error
	GetNotification(ctx context.Context, id int64) (*domain.BookingNotification, error)
}

// EventTypeRepository интерфейс репозитория типов событий
type EventTypeRepository interface {
	ListByHost(ctx context.Context, hostID int64) ([]*domain.EventType, error)
}

// Notifier постановка писем об отмене
type Notifier interface {
	NotifyBookingCancelled(ctx context.Context, n *domain.BookingNotification) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	BookingConflict(stage string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
