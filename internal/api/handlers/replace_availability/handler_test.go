package replace_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	got *models.ReplaceAvailabilityRequest
	err error
}

func (f *fakeService) Replace(_ context.Context, req *models.ReplaceAvailabilityRequest) (*models.AvailabilityListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	resp := &models.AvailabilityListResponse{}
	for i, s := range req.Schedules {
		resp.Availability = append(resp.Availability, models.AvailabilityResponse{
			ID:        int64(i + 1),
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsActive:  true,
		})
	}
	return resp, nil
}

func newRequest(body string, authed bool) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/availability", strings.NewReader(body))
	if authed {
		req = req.WithContext(middleware.WithHostID(req.Context(), 42))
	}
	return req
}

const body = `{"schedules":[{"dayOfWeek":1,"startTime":"09:00","endTime":"12:00"},{"dayOfWeek":1,"startTime":"14:00","endTime":"24:00"}]}`

func TestHandler_Replace(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, newRequest(body, true))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.got.HostID)
	require.Len(t, svc.got.Schedules, 2)
	assert.Equal(t, "24:00", svc.got.Schedules[1].EndTime.String())
	assert.Contains(t, rec.Body.String(), `"endTime":"24:00"`)
}

func TestHandler_HostIDFromBodyRejected(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, newRequest(`{"hostId":7,"schedules":[]}`, true))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		authed     bool
		err        error
		wantStatus int
	}{
		{name: "unauthenticated", authed: false, wantStatus: http.StatusUnauthorized},
		{name: "invalid window", authed: true, err: fmt.Errorf("%w: start after end", availability.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", authed: true, err: availability.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle(rec, newRequest(body, tt.authed))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
