package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HostResponse публичные данные хоста
type HostResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginResponse токен доступа
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Host      HostResponse `json:"host"`
}

// FromDomainHost конвертирует domain модель в DTO
func FromDomainHost(h *domain.Host) HostResponse {
	return HostResponse{
		ID:       h.ID,
		Name:     h.Name,
		Email:    h.Email,
		Username: h.Username,
	}
}
