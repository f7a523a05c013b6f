package delete_event_type

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	eventTypes "github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	hostID, id int64
	err        error
}

func (f *fakeService) Delete(_ context.Context, hostID, id int64) error {
	f.hostID, f.id = hostID, id
	return f.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "deleted", id: "5", wantStatus: http.StatusNoContent},
		{name: "zero id", id: "0", wantStatus: http.StatusBadRequest},
		{name: "not found", id: "5", err: eventTypes.ErrEventTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", id: "5", err: eventTypes.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/event-types/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			req = req.WithContext(middleware.WithHostID(req.Context(), 42))
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, int64(42), svc.hostID)
				assert.Equal(t, int64(5), svc.id)
			}
		})
	}
}
