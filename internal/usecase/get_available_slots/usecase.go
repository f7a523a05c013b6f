package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventtype"
	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/internal/slotengine"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/schedule"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	hostRepo         HostRepository
	eventTypeRepo    EventTypeRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	planner          *schedule.Planner
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hostRepo HostRepository,
	eventTypeRepo EventTypeRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	planner *schedule.Planner,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		hostRepo:         hostRepo,
		eventTypeRepo:    eventTypeRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		planner:          planner,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Дата вне горизонта или в прошлом дает пустой список, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: username=%s, event=%s, date=%s", req.Username, req.EventSlug, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем хоста
	host, err := uc.hostRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, hostRepo.ErrHostNotFound) {
			uc.logger.Warn("GetAvailableSlots: host username=%s not found", req.Username)
			return nil, ErrHostNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get host username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to get host: %v", ErrInternal, err)
	}

	// 4. Получаем активный тип события
	eventType, err := uc.eventTypeRepo.GetActiveBySlug(ctx, host.ID, req.EventSlug)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: event type slug=%s not found for host=%d", req.EventSlug, host.ID)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get event type slug=%s: %v", req.EventSlug, err)
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}

	response := &Response{Date: date.String(), Slots: []Slot{}}

	// 5. Дата вне горизонта - слотов нет
	if !uc.planner.InHorizon(date, now) {
		uc.logger.Info("GetAvailableSlots: date=%s is outside the booking horizon", date)
		uc.metrics.SlotsReturned(eventType.Slug, 0)
		return response, nil
	}

	// 6. Получаем окна доступности
	availability, err := uc.availabilityRepo.ListActiveByHost(ctx, host.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list availability for host=%d: %v", host.ID, err)
		return nil, fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
	}

	// 7. Получаем подтвержденные бронирования, начинающиеся в эту дату
	from, to := uc.planner.DayRange(date)
	bookings, err := uc.bookingRepo.ListConfirmedStartingBetween(ctx, host.ID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings for host=%d: %v", host.ID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 8. Вычисляем слоты
	slots, err := uc.planner.Slots(date, availability, bookings, eventType, now)
	if err != nil {
		if errors.Is(err, slotengine.ErrInvalidParams) {
			uc.logger.Error("GetAvailableSlots: event type id=%d has invalid params: %v", eventType.ID, err)
		}
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// 9. Оставляем только свободные, без повторов, по возрастанию
	for _, t := range schedule.AvailableTimes(slots) {
		response.Slots = append(response.Slots, Slot{Time: t})
	}

	uc.metrics.SlotsReturned(eventType.Slug, len(response.Slots))
	uc.logger.Info("GetAvailableSlots: %d of %d candidates available on %s for host=%d",
		len(response.Slots), len(slots), date, host.ID)

	return response, nil
}
