package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Enqueuer интерфейс клиента asynq
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Metrics счетчики постановки задач
type Metrics interface {
	NotificationEnqueued(taskType string, err error)
}

// Publisher ставит задачи уведомлений в очередь asynq
type Publisher struct {
	client   Enqueuer
	metrics  Metrics
	queue    string
	maxRetry int
}

// NewPublisher создает новый издатель задач
func NewPublisher(client Enqueuer, metrics Metrics, queueName string, maxRetry int) *Publisher {
	return &Publisher{
		client:   client,
		metrics:  metrics,
		queue:    queueName,
		maxRetry: maxRetry,
	}
}

// NotifyBookingCreated ставит задачу письма о новом бронировании
func (p *Publisher) NotifyBookingCreated(ctx context.Context, n *domain.BookingNotification) error {
	return p.publish(ctx, TypeBookingCreated, n)
}

// NotifyBookingCancelled ставит задачу письма об отмене
func (p *Publisher) NotifyBookingCancelled(ctx context.Context, n *domain.BookingNotification) error {
	return p.publish(ctx, TypeBookingCancelled, n)
}

// NotifyBookingReminder ставит задачу напоминания
func (p *Publisher) NotifyBookingReminder(ctx context.Context, n *domain.BookingNotification) error {
	return p.publish(ctx, TypeBookingReminder, n)
}

func (p *Publisher) publish(ctx context.Context, taskType string, n *domain.BookingNotification) error {
	task, err := NewNotificationTask(taskType, n)
	if err != nil {
		p.metrics.NotificationEnqueued(taskType, err)
		return err
	}

	opts := []asynq.Option{
		asynq.MaxRetry(p.maxRetry),
		// Повторная постановка того же письма по тому же бронированию отбрасывается
		asynq.TaskID(taskType + ":" + strconv.FormatInt(n.BookingID, 10) + ":" + n.Status),
	}
	if p.queue != "" {
		opts = append(opts, asynq.Queue(p.queue))
	}

	_, err = p.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		err = nil
	}
	p.metrics.NotificationEnqueued(taskType, err)
	if err != nil {
		return fmt.Errorf("%w: %s booking=%d: %v", ErrEnqueue, taskType, n.BookingID, err)
	}

	return nil
}
