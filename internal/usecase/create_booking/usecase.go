package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventtype"
	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/internal/slotengine"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/schedule"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// Стадии, на которых обнаружен конфликт (метка метрики)
const (
	conflictStageEngine     = "engine"
	conflictStageOverlap    = "overlap"
	conflictStageConstraint = "constraint"
)

// UseCase use case для создания бронирования гостем
type UseCase struct {
	hostRepo         HostRepository
	eventTypeRepo    EventTypeRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	planner          *schedule.Planner
	locker           Locker
	notifier         Notifier
	metrics          Metrics
	txManager        TransactionManager
	timeProvider     TimeProvider
	newToken         func() string
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hostRepo HostRepository,
	eventTypeRepo EventTypeRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	planner *schedule.Planner,
	locker Locker,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		hostRepo:         hostRepo,
		eventTypeRepo:    eventTypeRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		planner:          planner,
		locker:           locker,
		notifier:         notifier,
		metrics:          metrics,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		newToken:         uuid.NewString,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Слот проверяется движком, затем пересечение повторно проверяется в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: username=%s, event=%s, date=%s, time=%s, guest=%s",
		req.Username, req.EventSlug, req.Date, req.Time, req.GuestEmail)

	// 1. Валидация входных данных
	date, minute, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем хоста
	host, err := uc.hostRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, hostRepo.ErrHostNotFound) {
			uc.logger.Warn("CreateBooking: host username=%s not found", req.Username)
			return nil, ErrHostNotFound
		}
		uc.logger.Error("CreateBooking: failed to get host username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to get host: %v", ErrInternal, err)
	}

	// 4. Получаем активный тип события
	eventType, err := uc.eventTypeRepo.GetActiveBySlug(ctx, host.ID, req.EventSlug)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("CreateBooking: event type slug=%s not found for host=%d", req.EventSlug, host.ID)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get event type slug=%s: %v", req.EventSlug, err)
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}

	// 5. Дата должна быть в горизонте бронирования
	if date.Before(uc.planner.Today(now)) {
		uc.logger.Warn("CreateBooking: date=%s is in the past", date)
		return nil, fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date)
	}
	if !uc.planner.InHorizon(date, now) {
		uc.logger.Warn("CreateBooking: date=%s is beyond the booking horizon", date)
		return nil, ErrDateTooFarInFuture
	}

	// 6. Проверяем минимальное уведомление
	start := date.At(minute)
	if start.Before(uc.planner.Now(now).AddMinutes(eventType.MinimumNoticeMinutes)) {
		uc.logger.Warn("CreateBooking: %s violates minimum notice of %d minutes", start, eventType.MinimumNoticeMinutes)
		return nil, fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, eventType.MinimumNoticeMinutes)
	}

	startTime := start.Time(uc.planner.Location())
	endTime := startTime.Add(time.Duration(eventType.DurationMinutes) * time.Minute)

	// 7. Время должно быть свободным слотом расписания
	if err := uc.checkSlot(ctx, host, eventType, date, minute, now); err != nil {
		return nil, err
	}

	// 8. Берем блокировку хоста
	release, err := uc.locker.Acquire(ctx, host.ID)
	switch {
	case errors.Is(err, lock.ErrLockNotAcquired):
		uc.logger.Warn("CreateBooking: host=%d is locked by a concurrent booking", host.ID)
		return nil, ErrBookingInProgress
	case err != nil:
		// Без блокировки продолжаем: пересечение все равно ловит транзакция и constraint
		uc.logger.Warn("CreateBooking: lock unavailable for host=%d, continuing: %v", host.ID, err)
	default:
		defer release()
	}

	booking := &domain.Booking{
		HostID:        host.ID,
		EventTypeID:   eventType.ID,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestNotes:    req.GuestNotes,
		GuestTimezone: guestTimezone(req.GuestTimezone),
		StartTime:     startTime,
		EndTime:       endTime,
		Status:        eventType.InitialStatus(),
		CancelToken:   uc.newToken(),
	}

	var created *domain.Booking

	// 9. Повторная проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Проверяем пересечение с подтвержденными бронированиями
		overlap, err := uc.bookingRepo.HasOverlap(txCtx, host.ID, startTime, endTime, 0)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if overlap {
			uc.metrics.BookingConflict(conflictStageOverlap)
			uc.logger.Warn("CreateBooking: overlap detected for host=%d at %s", host.ID, startTime)
			return ErrSlotNotAvailable
		}

		// 9.2. Сохраняем бронирование
		result, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.metrics.BookingConflict(conflictStageConstraint)
				uc.logger.Warn("CreateBooking: constraint rejected booking for host=%d at %s", host.ID, startTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.metrics.BookingConflict(conflictStageConstraint)
			uc.logger.Warn("CreateBooking: serialization retries exhausted for host=%d", host.ID)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.BookingCreated(string(created.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", created.ID, created.Status)

	// 10. Уведомления после коммита, ошибка доставки не отменяет бронирование
	if err := uc.notifier.NotifyBookingCreated(ctx, domain.NewBookingNotification(created, host, eventType)); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify about booking id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:              created.ID,
		Status:          string(created.Status),
		Date:            date.String(),
		Time:            start.Clock(),
		StartTime:       created.StartTime,
		EndTime:         created.EndTime,
		DurationMinutes: eventType.DurationMinutes,
		GuestName:       created.GuestName,
		GuestEmail:      created.GuestEmail,
		GuestTimezone:   created.GuestTimezone,
		CancelToken:     created.CancelToken,
		EventTitle:      eventType.Title,
		HostName:        host.DisplayName(),
		CreatedAt:       created.CreatedAt,
	}, nil
}

// checkSlot проверяет, что запрошенное время является свободным слотом на дату
func (uc *UseCase) checkSlot(
	ctx context.Context,
	host *domain.Host,
	eventType *domain.EventType,
	date slotengine.Date,
	minute int,
	now time.Time,
) error {
	availability, err := uc.availabilityRepo.ListActiveByHost(ctx, host.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list availability for host=%d: %v", host.ID, err)
		return fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
	}

	from, to := uc.planner.DayRange(date)
	bookings, err := uc.bookingRepo.ListConfirmedStartingBetween(ctx, host.ID, from, to)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list bookings for host=%d: %v", host.ID, err)
		return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	slots, err := uc.planner.Slots(date, availability, bookings, eventType, now)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute slots: %v", err)
		return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	found, available := schedule.Lookup(slots, minute)
	if !found {
		uc.logger.Warn("CreateBooking: %s %s is not a slot of host=%d", date, date.At(minute).Clock(), host.ID)
		return ErrInvalidTimeSlot
	}
	if !available {
		uc.metrics.BookingConflict(conflictStageEngine)
		uc.logger.Warn("CreateBooking: slot %s %s is taken for host=%d", date, date.At(minute).Clock(), host.ID)
		return ErrSlotNotAvailable
	}

	return nil
}

func guestTimezone(tz *string) string {
	if tz == nil || *tz == "" {
		return domain.DefaultGuestTimezone
	}
	return *tz
}
