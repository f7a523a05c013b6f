package register_host

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/pkg/slug"
)

// fallbackUsername используется, когда из имени не получается slug
const fallbackUsername = "hote"

// UseCase use case регистрации хоста
type UseCase struct {
	hostRepo         HostRepository
	availabilityRepo AvailabilityRepository
	eventTypeRepo    EventTypeRepository
	hasher           PasswordHasher
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hostRepo HostRepository,
	availabilityRepo AvailabilityRepository,
	eventTypeRepo EventTypeRepository,
	hasher PasswordHasher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		hostRepo:         hostRepo,
		availabilityRepo: availabilityRepo,
		eventTypeRepo:    eventTypeRepo,
		hasher:           hasher,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute регистрирует хоста вместе с расписанием и типом события по умолчанию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterHost: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RegisterHost: email=%s", req.Email)

	// 2. Проверяем, что email свободен
	_, err := uc.hostRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		uc.logger.Warn("RegisterHost: email=%s already registered", req.Email)
		return nil, ErrEmailTaken
	case !errors.Is(err, hostRepo.ErrHostNotFound):
		uc.logger.Error("RegisterHost: failed to check email: %v", err)
		return nil, fmt.Errorf("%w: failed to check email: %v", ErrInternal, err)
	}

	// 3. Хешируем пароль
	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("RegisterHost: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var created *domain.Host

	// 4. Хост, расписание и тип события создаются в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		base := slug.Make(req.Name)
		if base == "" {
			base = fallbackUsername
		}

		username, err := slug.Unique(base, func(candidate string) (bool, error) {
			return uc.hostRepo.UsernameExists(txCtx, candidate)
		})
		if err != nil {
			return fmt.Errorf("%w: failed to pick username: %v", ErrInternal, err)
		}

		host, err := uc.hostRepo.Create(txCtx, &domain.Host{
			Name:         req.Name,
			Email:        req.Email,
			Username:     username,
			PasswordHash: hash,
			Timezone:     domain.DefaultGuestTimezone,
		})
		if err != nil {
			if errors.Is(err, hostRepo.ErrEmailTaken) {
				return ErrEmailTaken
			}
			return fmt.Errorf("%w: failed to create host: %v", ErrInternal, err)
		}

		for _, window := range domain.DefaultWeeklyAvailability(host.ID) {
			if _, err := uc.availabilityRepo.Create(txCtx, window); err != nil {
				return fmt.Errorf("%w: failed to create availability: %v", ErrInternal, err)
			}
		}

		if _, err := uc.eventTypeRepo.Create(txCtx, domain.DefaultEventType(host.ID)); err != nil {
			return fmt.Errorf("%w: failed to create event type: %v", ErrInternal, err)
		}

		created = host
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			uc.logger.Warn("RegisterHost: email=%s registered concurrently", req.Email)
			return nil, err
		}
		uc.logger.Error("RegisterHost: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("RegisterHost: successfully registered host id=%d, username=%s", created.ID, created.Username)

	return &Response{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		Username:  created.Username,
		CreatedAt: created.CreatedAt,
	}, nil
}
