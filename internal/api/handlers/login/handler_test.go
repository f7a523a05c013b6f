package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/service/auth"
	"github.com/m04kA/SMC-SchedulingService/internal/service/auth/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.LoginResponse{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC),
		Host:      models.HostResponse{ID: 42, Email: req.Email, Username: "alice"},
	}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "ok", body: `{"email":"alice@example.com","password":"secret42"}`, wantStatus: http.StatusOK},
		{name: "bad body", body: `[]`, wantStatus: http.StatusBadRequest},
		{name: "wrong password", body: `{"email":"alice@example.com","password":"nope"}`, err: auth.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "empty email", body: `{"email":"","password":"x"}`, err: auth.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: `{"email":"alice@example.com","password":"x"}`, err: auth.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))

			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
			}
		})
	}
}
