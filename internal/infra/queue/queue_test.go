package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

type fakeMetrics struct {
	calls map[string]int
	fails int
}

func (m *fakeMetrics) NotificationEnqueued(taskType string, err error) {
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[taskType]++
	if err != nil {
		m.fails++
	}
}

func notification() *domain.BookingNotification {
	start := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	return &domain.BookingNotification{
		BookingID:  9,
		Status:     string(domain.StatusConfirmed),
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		HostName:   "Bob",
		HostEmail:  "bob@example.com",
		EventTitle: "Réunion",
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
	}
}

func TestPublisher_Publish(t *testing.T) {
	enq := &fakeEnqueuer{}
	m := &fakeMetrics{}
	p := NewPublisher(enq, m, "notifications", 3)
	ctx := context.Background()

	require.NoError(t, p.NotifyBookingCreated(ctx, notification()))
	require.NoError(t, p.NotifyBookingCancelled(ctx, notification()))
	require.NoError(t, p.NotifyBookingReminder(ctx, notification()))

	require.Len(t, enq.tasks, 3)
	assert.Equal(t, TypeBookingCreated, enq.tasks[0].Type())
	assert.Equal(t, TypeBookingCancelled, enq.tasks[1].Type())
	assert.Equal(t, TypeBookingReminder, enq.tasks[2].Type())
	assert.Equal(t, 0, m.fails)

	parsed, err := ParseNotification(enq.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, int64(9), parsed.BookingID)
	assert.Equal(t, "alice@example.com", parsed.GuestEmail)
	assert.True(t, parsed.StartTime.Equal(notification().StartTime))
}

func TestPublisher_EnqueueError(t *testing.T) {
	m := &fakeMetrics{}
	p := NewPublisher(&fakeEnqueuer{err: errors.New("redis down")}, m, "", 3)

	err := p.NotifyBookingCreated(context.Background(), notification())
	assert.ErrorIs(t, err, ErrEnqueue)
	assert.Equal(t, 1, m.fails)
}

func TestParseNotification_Invalid(t *testing.T) {
	_, err := ParseNotification(asynq.NewTask(TypeBookingCreated, []byte("{")))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = ParseNotification(asynq.NewTask(TypeBookingCreated, []byte(`{"bookingId":0}`)))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPublisher_DuplicateIsNotAnError(t *testing.T) {
	m := &fakeMetrics{}
	p := NewPublisher(&fakeEnqueuer{err: asynq.ErrTaskIDConflict}, m, "", 3)

	assert.NoError(t, p.NotifyBookingReminder(context.Background(), notification()))
	assert.Equal(t, 0, m.fails)
}
