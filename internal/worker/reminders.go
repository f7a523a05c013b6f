package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ReminderScheduler периодически ставит напоминания о подтвержденных бронированиях
type ReminderScheduler struct {
	repo         ReminderRepository
	notifier     Notifier
	timeProvider TimeProvider
	lead         time.Duration
	log          Logger
	cron         *cron.Cron
}

// NewReminderScheduler создает планировщик напоминаний
// lead - за сколько до начала встречи отправляется напоминание
func NewReminderScheduler(repo ReminderRepository, notifier Notifier, timeProvider TimeProvider, lead time.Duration, log Logger) *ReminderScheduler {
	return &ReminderScheduler{
		repo:         repo,
		notifier:     notifier,
		timeProvider: timeProvider,
		lead:         lead,
		log:          log,
		cron:         cron.New(),
	}
}

// Start регистрирует задачу по cron-расписанию и запускает планировщик
func (s *ReminderScheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, err := s.RunOnce(ctx); err != nil {
			s.log.Error("ReminderScheduler: run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("reminder scheduler: invalid schedule %q: %w", spec, err)
	}

	s.cron.Start()
	s.log.Info("ReminderScheduler: started with schedule %q, lead %s", spec, s.lead)
	return nil
}

// Stop останавливает планировщик; возвращаемый контекст завершается после текущего запуска
func (s *ReminderScheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunOnce отправляет напоминания по бронированиям, начинающимся в ближайшие lead
// Возвращает число поставленных напоминаний
func (s *ReminderScheduler) RunOnce(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()

	due, err := s.repo.ListDueReminders(ctx, now, now.Add(s.lead))
	if err != nil {
		return 0, fmt.Errorf("reminder scheduler: list due: %w", err)
	}

	// Отметка ставится до отправки, напоминание уходит не более одного раза
	sent := 0
	for _, n := range due {
		if err := s.repo.MarkReminderSent(ctx, n.BookingID); err != nil {
			s.log.Error("ReminderScheduler: booking=%d mark sent: %v", n.BookingID, err)
			continue
		}
		if err := s.notifier.NotifyBookingReminder(ctx, n); err != nil {
			s.log.Warn("ReminderScheduler: booking=%d marked but not notified: %v", n.BookingID, err)
			continue
		}
		sent++
	}

	if len(due) > 0 {
		s.log.Info("ReminderScheduler: %d/%d reminders enqueued", sent, len(due))
	}

	return sent, nil
}
