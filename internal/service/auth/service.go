package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/internal/service/auth/models"
)

// Service сервис аутентификации хостов
type Service struct {
	hostRepo HostRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(hostRepo HostRepository, hasher PasswordHasher, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		hostRepo: hostRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login проверяет email и пароль и выпускает JWT
// Неизвестный email и неверный пароль неразличимы для клиента
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: email=%s", email)

	host, err := s.hostRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, hostRepo.ErrHostNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !s.hasher.Compare(host.PasswordHash, req.Password) {
		s.logger.Warn("Login: wrong password for host=%d", host.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(host.ID, host.Email)
	if err != nil {
		s.logger.Error("Login: failed to issue token for host=%d: %v", host.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: host=%d signed in", host.ID)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Host:      models.FromDomainHost(host),
	}, nil
}
