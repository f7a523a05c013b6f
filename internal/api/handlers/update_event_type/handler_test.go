package update_event_type

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	eventTypes "github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/internal/service/event_types/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	gotID  int64
	gotReq *models.UpdateEventTypeRequest
	err    error
}

func (f *fakeService) Update(_ context.Context, id int64, req *models.UpdateEventTypeRequest) (*models.EventTypeResponse, error) {
	f.gotID = id
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.EventTypeResponse{ID: id, IsActive: false}, nil
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/event-types/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	return req.WithContext(middleware.WithHostID(req.Context(), 42))
}

func TestHandler_PartialUpdate(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, newRequest("5", `{"isActive":false}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.gotID)
	assert.Equal(t, int64(42), svc.gotReq.HostID)
	require.NotNil(t, svc.gotReq.IsActive)
	assert.False(t, *svc.gotReq.IsActive)
	assert.Nil(t, svc.gotReq.Title)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "bad id", id: "-1", wantStatus: http.StatusBadRequest},
		{name: "not found", id: "5", err: eventTypes.ErrEventTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid", id: "5", err: eventTypes.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", id: "5", err: eventTypes.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle(rec, newRequest(tt.id, `{"title":"Nouveau"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
