package worker

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/queue"
)

// InlineNotifier выполняет задачи уведомлений синхронно, без очереди
// Используется, когда очередь выключена в конфигурации
type InlineNotifier struct {
	handler *TaskHandler
}

// NewInlineNotifier создает синхронный notifier поверх того же обработчика задач
func NewInlineNotifier(handler *TaskHandler) *InlineNotifier {
	return &InlineNotifier{handler: handler}
}

func (n *InlineNotifier) NotifyBookingCreated(ctx context.Context, b *domain.BookingNotification) error {
	return n.run(ctx, queue.TypeBookingCreated, b)
}

func (n *InlineNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.BookingNotification) error {
	return n.run(ctx, queue.TypeBookingCancelled, b)
}

func (n *InlineNotifier) NotifyBookingReminder(ctx context.Context, b *domain.BookingNotification) error {
	return n.run(ctx, queue.TypeBookingReminder, b)
}

func (n *InlineNotifier) run(ctx context.Context, taskType string, b *domain.BookingNotification) error {
	task, err := queue.NewNotificationTask(taskType, b)
	if err != nil {
		return err
	}
	return n.handler.ProcessTask(ctx, task)
}
