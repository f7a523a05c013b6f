package event_types

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventtype"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/slug"
)

// fallbackSlug используется, когда из названия не получается slug
const fallbackSlug = "evenement"

var colorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Service сервис для работы с типами событий хоста
type Service struct {
	eventTypeRepo EventTypeRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса типов событий
func NewService(eventTypeRepo EventTypeRepository, logger Logger) *Service {
	return &Service{
		eventTypeRepo: eventTypeRepo,
		logger:        logger,
	}
}

// List получает все типы событий хоста
func (s *Service) List(ctx context.Context, hostID int64) (*models.EventTypeListResponse, error) {
	s.logger.Info("List: fetching event types for host=%d", hostID)

	eventTypes, err := s.eventTypeRepo.ListByHost(ctx, hostID)
	if err != nil {
		s.logger.Error("List: repository error for host=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d event types for host=%d", len(eventTypes), hostID)
	return models.FromDomainEventTypeList(eventTypes), nil
}

// Create создает тип события с уникальным для хоста slug
func (s *Service) Create(ctx context.Context, req *models.CreateEventTypeRequest) (*models.EventTypeResponse, error) {
	s.logger.Info("Create: creating event type title=%q for host=%d", req.Title, req.HostID)

	// 1. Подбираем slug по названию
	base := slug.Make(req.Title)
	if base == "" {
		base = fallbackSlug
	}

	candidate, err := slug.Unique(base, func(c string) (bool, error) {
		return s.eventTypeRepo.SlugExists(ctx, req.HostID, c, 0)
	})
	if err != nil {
		s.logger.Error("Create: failed to pick slug for host=%d: %v", req.HostID, err)
		return nil, fmt.Errorf("%w: Create - slug lookup: %v", ErrInternal, err)
	}

	// 2. Собираем и валидируем тип события
	et := req.ToDomainEventType(candidate)
	if err := validateEventType(et); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.eventTypeRepo.Create(ctx, et)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrDuplicateSlug) {
			s.logger.Warn("Create: slug=%s taken concurrently for host=%d", candidate, req.HostID)
			return nil, ErrDuplicateSlug
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created event type id=%d, slug=%s", created.ID, created.Slug)
	return models.FromDomainEventType(created), nil
}

// Update частично обновляет тип события хоста
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEventTypeRequest) (*models.EventTypeResponse, error) {
	s.logger.Info("Update: updating event type id=%d by host=%d", id, req.HostID)

	// 1. Получаем существующий тип события
	et, err := s.eventTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			s.logger.Warn("Update: event type id=%d not found", id)
			return nil, ErrEventTypeNotFound
		}
		s.logger.Error("Update: repository error for event type id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Чужой тип события не раскрываем
	if et.HostID != req.HostID {
		s.logger.Warn("Update: event type id=%d does not belong to host=%d", id, req.HostID)
		return nil, ErrEventTypeNotFound
	}

	// 2. Применяем обновления и валидируем
	req.ApplyToEventType(et)
	if err := validateEventType(et); err != nil {
		s.logger.Warn("Update: validation failed for event type id=%d: %v", id, err)
		return nil, err
	}

	// 3. Сохраняем
	updated, err := s.eventTypeRepo.Update(ctx, et)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			s.logger.Warn("Update: event type id=%d not found during update", id)
			return nil, ErrEventTypeNotFound
		}
		s.logger.Error("Update: repository error for event type id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated event type id=%d", id)
	return models.FromDomainEventType(updated), nil
}

// Delete удаляет тип события хоста вместе с его бронированиями
func (s *Service) Delete(ctx context.Context, hostID, id int64) error {
	s.logger.Info("Delete: deleting event type id=%d by host=%d", id, hostID)

	if err := s.eventTypeRepo.Delete(ctx, hostID, id); err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			s.logger.Warn("Delete: event type id=%d not found for host=%d", id, hostID)
			return ErrEventTypeNotFound
		}
		s.logger.Error("Delete: repository error for event type id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted event type id=%d", id)
	return nil
}

// validateEventType проверяет границы параметров типа события
func validateEventType(et *domain.EventType) error {
	if et.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(et.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if et.DurationMinutes < domain.MinEventDurationMinutes || et.DurationMinutes > domain.MaxEventDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinEventDurationMinutes, domain.MaxEventDurationMinutes)
	}

	if et.BeforeBufferMinutes < 0 || et.BeforeBufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: beforeBufferMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	if et.AfterBufferMinutes < 0 || et.AfterBufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: afterBufferMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	if et.MinimumNoticeMinutes < 0 || et.MinimumNoticeMinutes > domain.MaxMinimumNoticeMinutes {
		return fmt.Errorf("%w: minimumNoticeMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxMinimumNoticeMinutes)
	}

	if !colorPattern.MatchString(et.Color) {
		return fmt.Errorf("%w: color must look like #rrggbb", ErrInvalidInput)
	}

	return nil
}
