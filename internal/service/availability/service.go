package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

// Service сервис для работы с недельным расписанием хоста
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(availabilityRepo AvailabilityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// List получает окна хоста, упорядоченные по дню недели и началу
func (s *Service) List(ctx context.Context, hostID int64) (*models.AvailabilityListResponse, error) {
	s.logger.Info("List: fetching availability for host=%d", hostID)

	list, err := s.availabilityRepo.ListByHost(ctx, hostID)
	if err != nil {
		s.logger.Error("List: repository error for host=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAvailabilityList(list), nil
}

// Create добавляет окно доступности
func (s *Service) Create(ctx context.Context, req *models.CreateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Create: adding window day=%d %s-%s for host=%d", req.DayOfWeek, req.StartTime, req.EndTime, req.HostID)

	window, err := toWindow(req.HostID, req.Schedule)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created window id=%d", created.ID)
	return models.FromDomainAvailability(created), nil
}

// Replace атомарно заменяет все окна хоста
// Пустой список очищает расписание
func (s *Service) Replace(ctx context.Context, req *models.ReplaceAvailabilityRequest) (*models.AvailabilityListResponse, error) {
	s.logger.Info("Replace: replacing availability for host=%d with %d windows", req.HostID, len(req.Schedules))

	// 1. Валидируем все окна до записи
	windows := make([]*domain.Availability, 0, len(req.Schedules))
	for i, schedule := range req.Schedules {
		window, err := toWindow(req.HostID, schedule)
		if err != nil {
			s.logger.Warn("Replace: validation failed for window #%d: %v", i, err)
			return nil, fmt.Errorf("schedules[%d]: %w", i, err)
		}
		windows = append(windows, window)
	}

	// 2. Удаляем старые и создаем новые окна в одной транзакции
	created := make([]*domain.Availability, 0, len(windows))
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.DeleteByHost(txCtx, req.HostID); err != nil {
			return err
		}

		for _, window := range windows {
			a, err := s.availabilityRepo.Create(txCtx, window)
			if err != nil {
				return err
			}
			created = append(created, a)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Replace: transaction failed for host=%d: %v", req.HostID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully replaced availability for host=%d", req.HostID)
	return models.FromDomainAvailabilityList(created), nil
}

// Delete удаляет окно хоста
func (s *Service) Delete(ctx context.Context, hostID, id int64) error {
	s.logger.Info("Delete: deleting window id=%d by host=%d", id, hostID)

	if err := s.availabilityRepo.Delete(ctx, hostID, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: window id=%d not found for host=%d", id, hostID)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted window id=%d", id)
	return nil
}

// toWindow конвертирует и проверяет окно
func toWindow(hostID int64, schedule models.Schedule) (*domain.Availability, error) {
	window, err := schedule.ToDomainAvailability(hostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !window.IsValid() {
		return nil, fmt.Errorf("%w: dayOfWeek must be 0-6 and startTime before endTime", ErrInvalidInput)
	}

	return window, nil
}
