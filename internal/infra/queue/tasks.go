package queue

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Типы задач уведомлений
const (
	TypeBookingCreated   = "email:booking_created"
	TypeBookingCancelled = "email:booking_cancelled"
	TypeBookingReminder  = "email:booking_reminder"
)

var (
	// ErrMarshalPayload возвращается при ошибке сериализации payload задачи
	ErrMarshalPayload = errors.New("queue: failed to marshal payload")

	// ErrInvalidPayload возвращается, когда payload задачи нельзя разобрать
	ErrInvalidPayload = errors.New("queue: invalid payload")

	// ErrEnqueue возвращается при ошибке постановки задачи в очередь
	ErrEnqueue = errors.New("queue: failed to enqueue task")
)

// NewNotificationTask создает задачу уведомления заданного типа
func NewNotificationTask(taskType string, n *domain.BookingNotification) (*asynq.Task, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalPayload, err)
	}
	return asynq.NewTask(taskType, payload), nil
}

// ParseNotification разбирает payload задачи уведомления
func ParseNotification(task *asynq.Task) (*domain.BookingNotification, error) {
	var n domain.BookingNotification
	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, task.Type(), err)
	}
	if n.BookingID <= 0 || n.GuestEmail == "" {
		return nil, fmt.Errorf("%w: %s: missing booking id or guest email", ErrInvalidPayload, task.Type())
	}
	return &n, nil
}
