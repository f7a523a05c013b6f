package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// conflictStageConfirm метка метрики конфликта при подтверждении хостом
const conflictStageConfirm = "confirm"

// Service сервис для работы с бронированиями хоста и отменой гостем
type Service struct {
	bookingRepo   BookingRepository
	eventTypeRepo EventTypeRepository
	notifier      Notifier
	metrics       Metrics
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	eventTypeRepo EventTypeRepository,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		eventTypeRepo: eventTypeRepo,
		notifier:      notifier,
		metrics:       metrics,
		txManager:     txManager,
		timeProvider:  realTimeProvider{},
		logger:        logger,
	}
}

// ListHostBookings получает бронирования хоста по возрастанию времени начала
// Опционально фильтрует по статусу и только будущие
func (s *Service) ListHostBookings(ctx context.Context, req *models.ListHostBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListHostBookings: fetching bookings for host=%d, status=%v, upcoming=%t",
		req.HostID, req.Status, req.Upcoming)

	filter := domain.HostBookingsFilter{HostID: req.HostID}

	if req.Status != nil && *req.Status != "" {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("ListHostBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	if req.Upcoming {
		now := s.timeProvider.Now()
		filter.From = &now
	}

	bookings, err := s.bookingRepo.ListByHost(ctx, filter)
	if err != nil {
		s.logger.Error("ListHostBookings: repository error for host=%d: %v", req.HostID, err)
		return nil, fmt.Errorf("%w: ListHostBookings - repository error: %v", ErrInternal, err)
	}

	eventTypes, err := s.eventTypeRepo.ListByHost(ctx, req.HostID)
	if err != nil {
		s.logger.Error("ListHostBookings: failed to list event types for host=%d: %v", req.HostID, err)
		return nil, fmt.Errorf("%w: ListHostBookings - event types error: %v", ErrInternal, err)
	}

	titles := make(map[int64]string, len(eventTypes))
	for _, et := range eventTypes {
		titles[et.ID] = et.Title
	}

	s.logger.Info("ListHostBookings: successfully fetched %d bookings for host=%d", len(bookings), req.HostID)
	return models.FromDomainBookingList(bookings, titles), nil
}

// UpdateStatus меняет статус бронирования хостом
// Подтверждение повторно проверяет пересечения, отмена отправляет письма
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by host=%d", bookingID, req.Status, req.HostID)

	// 1. Валидируем статус и причину
	next, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	reason, err := normalizeReason(req.CancelReason)
	if err != nil {
		s.logger.Warn("UpdateStatus: %v", err)
		return nil, err
	}

	var booking *domain.Booking

	// 2. Проверки и обновление в сериализуемой транзакции
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if b.HostID != req.HostID {
			return ErrAccessDenied
		}

		if !b.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
		}

		if next == domain.StatusConfirmed {
			overlap, err := s.bookingRepo.HasOverlap(txCtx, b.HostID, b.StartTime, b.EndTime, b.ID)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
					return ErrSlotNotAvailable
				}
				return fmt.Errorf("%w: UpdateStatus - overlap check: %v", ErrInternal, err)
			}
			if overlap {
				s.metrics.BookingConflict(conflictStageConfirm)
				return ErrSlotNotAvailable
			}
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, b.ID, next, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				s.metrics.BookingConflict(conflictStageConfirm)
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		b.Status = next
		if next == domain.StatusCancelled {
			b.CancelReason = reason
		}
		booking = b
		return nil
	})

	if err != nil {
		err = s.mapTxError(err)
		if errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateStatus: failed for booking id=%d: %v", bookingID, err)
		} else {
			s.logger.Warn("UpdateStatus: rejected for booking id=%d: %v", bookingID, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, next)

	// 3. Данные письма и название события
	var title string
	notification, err := s.bookingRepo.GetNotification(ctx, bookingID)
	if err != nil {
		s.logger.Warn("UpdateStatus: failed to load notification data for booking id=%d: %v", bookingID, err)
	} else {
		title = notification.EventTitle
		if next == domain.StatusCancelled {
			s.notifyCancelled(ctx, "UpdateStatus", notification)
		}
	}

	return models.FromDomainBooking(booking, title), nil
}

// GetByToken получает бронирование по токену отмены
// Публичный метод - доступен гостю по ссылке из письма
func (s *Service) GetByToken(ctx context.Context, token string) (*models.PublicBookingResponse, error) {
	s.logger.Info("GetByToken: fetching booking by token")

	if _, err := uuid.Parse(token); err != nil {
		s.logger.Warn("GetByToken: malformed token")
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByCancelToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByToken: booking not found")
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}

	notification, err := s.bookingRepo.GetNotification(ctx, booking.ID)
	if err != nil {
		s.logger.Error("GetByToken: failed to load booking id=%d details: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}

	return models.FromNotification(notification, booking.CanBeCancelled(s.timeProvider.Now())), nil
}

// CancelByToken отменяет бронирование гостем
// Отмена возможна до начала встречи для ожидающих и подтвержденных бронирований
func (s *Service) CancelByToken(ctx context.Context, req *models.CancelByTokenRequest) (*models.PublicBookingResponse, error) {
	s.logger.Info("CancelByToken: cancelling booking by token")

	if _, err := uuid.Parse(req.Token); err != nil {
		s.logger.Warn("CancelByToken: malformed token")
		return nil, ErrBookingNotFound
	}

	reason, err := normalizeReason(req.Reason)
	if err != nil {
		s.logger.Warn("CancelByToken: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()
	var bookingID int64

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := s.bookingRepo.GetByCancelToken(txCtx, req.Token)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
		}

		if b.IsCancelled() {
			return ErrAlreadyCancelled
		}
		if !b.CanBeCancelled(now) {
			return fmt.Errorf("%w: status=%s", ErrCannotCancel, b.Status)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusCancelled, reason); err != nil {
			return fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
		}

		bookingID = b.ID
		return nil
	})

	if err != nil {
		err = s.mapTxError(err)
		if errors.Is(err, ErrInternal) {
			s.logger.Error("CancelByToken: failed: %v", err)
		} else {
			s.logger.Warn("CancelByToken: rejected: %v", err)
		}
		return nil, err
	}

	s.logger.Info("CancelByToken: successfully cancelled booking id=%d", bookingID)

	notification, err := s.bookingRepo.GetNotification(ctx, bookingID)
	if err != nil {
		s.logger.Error("CancelByToken: failed to load booking id=%d details: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
	}

	s.notifyCancelled(ctx, "CancelByToken", notification)

	return models.FromNotification(notification, false), nil
}

// Вспомогательные методы

func (s *Service) notifyCancelled(ctx context.Context, op string, n *domain.BookingNotification) {
	if err := s.notifier.NotifyBookingCancelled(ctx, n); err != nil {
		s.logger.Warn("%s: failed to notify about cancellation of booking id=%d: %v", op, n.BookingID, err)
	}
}

// mapTxError переводит ошибки менеджера транзакций в ошибки сервиса
func (s *Service) mapTxError(err error) error {
	switch {
	case errors.Is(err, txmanager.ErrSerializationFailure):
		return ErrSlotNotAvailable
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrAccessDenied),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrSlotNotAvailable),
		errors.Is(err, ErrAlreadyCancelled),
		errors.Is(err, ErrCannotCancel),
		errors.Is(err, ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}
}

// normalizeReason обрезает пробелы и проверяет длину причины отмены
func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxCancelReasonLength {
		return nil, fmt.Errorf("%w: cancel reason is longer than %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	return &trimmed, nil
}
