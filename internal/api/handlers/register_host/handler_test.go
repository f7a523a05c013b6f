package register_host

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registerHost "github.com/m04kA/SMC-SchedulingService/internal/usecase/register_host"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeUseCase struct {
	got *registerHost.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *registerHost.Request) (*registerHost.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &registerHost.Response{
		ID:        1,
		Name:      req.Name,
		Email:     req.Email,
		Username:  "elodie-muller",
		CreatedAt: time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC),
	}, nil
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(`{"name":"Élodie Müller","email":"elodie@example.com","password":"secret42"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "secret42", uc.got.Password)

	var body HostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "elodie-muller", body.Username)
	assert.Equal(t, "2025-11-02T12:00:00Z", body.CreatedAt)
	assert.NotContains(t, rec.Body.String(), "secret42")
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{registerHost.ErrEmailTaken, http.StatusConflict},
		{registerHost.ErrPasswordTooShort, http.StatusBadRequest},
		{fmt.Errorf("%w: email", registerHost.ErrInvalidInput), http.StatusBadRequest},
		{registerHost.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()).
				Handle(rec, newRequest(`{"name":"A","email":"a@example.com","password":"x"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
