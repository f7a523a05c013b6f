package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-SchedulingService/internal/infra/queue"
)

// TaskHandler обрабатывает задачи уведомлений, отправляя письма
type TaskHandler struct {
	mailer Notifier
	log    Logger
}

// NewTaskHandler создает обработчик задач уведомлений
func NewTaskHandler(mailer Notifier, log Logger) *TaskHandler {
	return &TaskHandler{mailer: mailer, log: log}
}

// Mux регистрирует обработчики всех типов задач уведомлений
func (h *TaskHandler) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeBookingCreated, h)
	mux.Handle(queue.TypeBookingCancelled, h)
	mux.Handle(queue.TypeBookingReminder, h)
	return mux
}

// ProcessTask реализует asynq.Handler
func (h *TaskHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	n, err := queue.ParseNotification(task)
	if err != nil {
		h.log.Error("Worker: drop task %s: %v", task.Type(), err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	switch task.Type() {
	case queue.TypeBookingCreated:
		err = h.mailer.NotifyBookingCreated(ctx, n)
	case queue.TypeBookingCancelled:
		err = h.mailer.NotifyBookingCancelled(ctx, n)
	case queue.TypeBookingReminder:
		err = h.mailer.NotifyBookingReminder(ctx, n)
	default:
		return fmt.Errorf("worker: unknown task type %q: %w", task.Type(), asynq.SkipRetry)
	}

	if err != nil {
		h.log.Warn("Worker: task %s booking=%d failed: %v", task.Type(), n.BookingID, err)
		return err
	}

	h.log.Info("Worker: task %s booking=%d done", task.Type(), n.BookingID)
	return nil
}
