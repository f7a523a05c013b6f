package delete_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) Delete(_ context.Context, _, _ int64) error {
	return f.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "deleted", id: "3", wantStatus: http.StatusNoContent},
		{name: "bad id", id: "x", wantStatus: http.StatusBadRequest},
		{name: "foreign window", id: "3", err: availability.ErrAvailabilityNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", id: "3", err: availability.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/availability/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			req = req.WithContext(middleware.WithHostID(req.Context(), 42))
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
