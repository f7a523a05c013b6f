package worker

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Notifier доставка писем о бронированиях
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, n *domain.BookingNotification) error
	NotifyBookingCancelled(ctx context.Context, n *domain.BookingNotification) error
	NotifyBookingReminder(ctx context.Context, n *domain.BookingNotification) error
}

// ReminderRepository выборка бронирований, по которым пора напомнить
type ReminderRepository interface {
	ListDueReminders(ctx context.Context, from, to time.Time) ([]*domain.BookingNotification, error)
	MarkReminderSent(ctx context.Context, id int64) error
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

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
