package get_available_days

import (
	"context"
	"errors"
	"fmt"
	"strings"

	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventtype"
	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/schedule"
)

// UseCase use case получения дней горизонта, в которые можно забронировать событие
type UseCase struct {
	hostRepo         HostRepository
	eventTypeRepo    EventTypeRepository
	availabilityRepo AvailabilityRepository
	planner          *schedule.Planner
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hostRepo HostRepository,
	eventTypeRepo EventTypeRepository,
	availabilityRepo AvailabilityRepository,
	planner *schedule.Planner,
	logger Logger,
) *UseCase {
	return &UseCase{
		hostRepo:         hostRepo,
		eventTypeRepo:    eventTypeRepo,
		availabilityRepo: availabilityRepo,
		planner:          planner,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: username=%s, event=%s", req.Username, req.EventSlug)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.EventSlug) == "" {
		uc.logger.Warn("GetAvailableDays: empty username or event slug")
		return nil, fmt.Errorf("%w: username and eventSlug are required", ErrInvalidInput)
	}

	// 2. Получаем хоста
	host, err := uc.hostRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, hostRepo.ErrHostNotFound) {
			uc.logger.Warn("GetAvailableDays: host username=%s not found", req.Username)
			return nil, ErrHostNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get host username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to get host: %v", ErrInternal, err)
	}

	// 3. Получаем активный тип события
	eventType, err := uc.eventTypeRepo.GetActiveBySlug(ctx, host.ID, req.EventSlug)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			uc.logger.Warn("GetAvailableDays: event type slug=%s not found for host=%d", req.EventSlug, host.ID)
			return nil, ErrEventTypeNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get event type slug=%s: %v", req.EventSlug, err)
		return nil, fmt.Errorf("%w: failed to get event type: %v", ErrInternal, err)
	}

	// 4. Получаем активные окна хоста
	availability, err := uc.availabilityRepo.ListActiveByHost(ctx, host.ID)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to list availability for host=%d: %v", host.ID, err)
		return nil, fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
	}

	// 5. Вычисляем дни горизонта
	days := uc.planner.AvailableDays(availability, uc.timeProvider.Now())

	result := make([]string, 0, len(days))
	for _, d := range days {
		result = append(result, d.String())
	}

	uc.logger.Info("GetAvailableDays: %d days for host=%d, event=%s", len(result), host.ID, eventType.Slug)

	return &Response{
		AvailableDays: result,
		EventType: EventTypeInfo{
			ID:                   eventType.ID,
			Title:                eventType.Title,
			Slug:                 eventType.Slug,
			Description:          eventType.Description,
			DurationMinutes:      eventType.DurationMinutes,
			Color:                eventType.Color,
			RequiresConfirmation: eventType.RequiresConfirmation,
		},
		Host: HostInfo{
			Name:     host.DisplayName(),
			Username: host.Username,
			Image:    host.Image,
			Timezone: host.Timezone,
		},
	}, nil
}

