package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	resp *models.PublicBookingResponse
	err  error
}

func (f *fakeService) GetByToken(_ context.Context, _ string) (*models.PublicBookingResponse, error) {
	return f.resp, f.err
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/bookings/abc", nil)
	return mux.SetURLVars(req, map[string]string{"token": "abc"})
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeService
		wantStatus int
	}{
		{
			name:       "found",
			svc:        &fakeService{resp: &models.PublicBookingResponse{ID: 5, Status: "confirmed", CanCancel: true}},
			wantStatus: http.StatusOK,
		},
		{name: "not found", svc: &fakeService{err: bookings.ErrBookingNotFound}, wantStatus: http.StatusNotFound},
		{name: "internal", svc: &fakeService{err: bookings.ErrInternal}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(tt.svc, logger.NewNop()).Handle(rec, newRequest())

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"canCancel":true`)
			}
		})
	}
}
