package register_host

import (
	"time"

	registerHost "github.com/m04kA/SMC-SchedulingService/internal/usecase/register_host"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HostResponse HTTP response model
type HostResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterRequest) ToUseCaseRequest() *registerHost.Request {
	return &registerHost.Request{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerHost.Response) *HostResponse {
	return &HostResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Username:  resp.Username,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
