package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/queue"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeNotifier struct {
	created, cancelled, reminded []int64
	failFor                      int64
}

func (f *fakeNotifier) NotifyBookingCreated(_ context.Context, n *domain.BookingNotification) error {
	f.created = append(f.created, n.BookingID)
	return nil
}

func (f *fakeNotifier) NotifyBookingCancelled(_ context.Context, n *domain.BookingNotification) error {
	f.cancelled = append(f.cancelled, n.BookingID)
	return nil
}

func (f *fakeNotifier) NotifyBookingReminder(_ context.Context, n *domain.BookingNotification) error {
	if n.BookingID == f.failFor {
		return errors.New("smtp down")
	}
	f.reminded = append(f.reminded, n.BookingID)
	return nil
}

type fakeReminderRepo struct {
	due      []*domain.BookingNotification
	from, to time.Time
	marked   []int64
	listErr  error
	markFail int64
}

func (r *fakeReminderRepo) ListDueReminders(_ context.Context, from, to time.Time) ([]*domain.BookingNotification, error) {
	r.from, r.to = from, to
	return r.due, r.listErr
}

func (r *fakeReminderRepo) MarkReminderSent(_ context.Context, id int64) error {
	if id == r.markFail {
		return errors.New("db")
	}
	r.marked = append(r.marked, id)
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func note(id int64) *domain.BookingNotification {
	return &domain.BookingNotification{BookingID: id, GuestEmail: "g@example.com", Status: string(domain.StatusConfirmed)}
}

func TestTaskHandler_ProcessTask(t *testing.T) {
	n := &fakeNotifier{}
	h := NewTaskHandler(n, logger.NewNop())
	ctx := context.Background()

	for _, tt := range []struct {
		taskType string
		id       int64
	}{
		{queue.TypeBookingCreated, 1},
		{queue.TypeBookingCancelled, 2},
		{queue.TypeBookingReminder, 3},
	} {
		task, err := queue.NewNotificationTask(tt.taskType, note(tt.id))
		require.NoError(t, err)
		require.NoError(t, h.ProcessTask(ctx, task))
	}

	assert.Equal(t, []int64{1}, n.created)
	assert.Equal(t, []int64{2}, n.cancelled)
	assert.Equal(t, []int64{3}, n.reminded)
}

func TestTaskHandler_BadPayloadSkipsRetry(t *testing.T) {
	h := NewTaskHandler(&fakeNotifier{}, logger.NewNop())

	err := h.ProcessTask(context.Background(), asynq.NewTask(queue.TypeBookingCreated, []byte("nope")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestInlineNotifier(t *testing.T) {
	n := &fakeNotifier{}
	inline := NewInlineNotifier(NewTaskHandler(n, logger.NewNop()))

	require.NoError(t, inline.NotifyBookingCreated(context.Background(), note(5)))
	require.NoError(t, inline.NotifyBookingCancelled(context.Background(), note(6)))
	assert.Equal(t, []int64{5}, n.created)
	assert.Equal(t, []int64{6}, n.cancelled)
}

func TestReminderScheduler_RunOnce(t *testing.T) {
	now := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
	repo := &fakeReminderRepo{due: []*domain.BookingNotification{note(1), note(2), note(3)}}
	n := &fakeNotifier{failFor: 2}

	s := NewReminderScheduler(repo, n, fixedTime{now}, 24*time.Hour, logger.NewNop())

	sent, err := s.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []int64{1, 3}, n.reminded)
	assert.Equal(t, []int64{1, 2, 3}, repo.marked)
	assert.Equal(t, now, repo.from)
	assert.Equal(t, now.Add(24*time.Hour), repo.to)
}

func TestReminderScheduler_MarkFailureSkipsSend(t *testing.T) {
	now := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
	repo := &fakeReminderRepo{due: []*domain.BookingNotification{note(1), note(2)}, markFail: 1}
	n := &fakeNotifier{}

	s := NewReminderScheduler(repo, n, fixedTime{now}, time.Hour, logger.NewNop())

	// Повторные запуски не должны слать напоминание, которое не удалось отметить
	for i := 0; i < 3; i++ {
		sent, err := s.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	}
	assert.NotContains(t, n.reminded, int64(1))
}

func TestReminderScheduler_ListError(t *testing.T) {
	repo := &fakeReminderRepo{listErr: errors.New("db")}
	s := NewReminderScheduler(repo, &fakeNotifier{}, fixedTime{time.Now()}, time.Hour, logger.NewNop())

	_, err := s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestReminderScheduler_InvalidSpec(t *testing.T) {
	s := NewReminderScheduler(&fakeReminderRepo{}, &fakeNotifier{}, fixedTime{time.Now()}, time.Hour, logger.NewNop())
	assert.Error(t, s.Start("not a cron spec"))
}
