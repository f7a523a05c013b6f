package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeService struct {
	gotID  int64
	gotReq *models.UpdateStatusRequest
	err    error
}

func (f *fakeService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	f.gotID = id
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: req.Status}, nil
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	return req.WithContext(middleware.WithHostID(req.Context(), 42))
}

func TestHandler_OK(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, newRequest("9", `{"status":"cancelled","cancelReason":"Malade"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), svc.gotID)
	assert.Equal(t, int64(42), svc.gotReq.HostID)
	assert.Equal(t, "cancelled", svc.gotReq.Status)
	require.NotNil(t, svc.gotReq.CancelReason)
	assert.Equal(t, "Malade", *svc.gotReq.CancelReason)
}

func TestHandler_BadInput(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
	}{
		{name: "non numeric id", id: "abc", body: `{"status":"confirmed"}`},
		{name: "zero id", id: "0", body: `{"status":"confirmed"}`},
		{name: "bad body", id: "9", body: `{"status":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, newRequest(tt.id, tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.gotReq)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{bookings.ErrBookingNotFound, http.StatusNotFound},
		{bookings.ErrAccessDenied, http.StatusForbidden},
		{fmt.Errorf("%w: lost", bookings.ErrInvalidStatus), http.StatusBadRequest},
		{fmt.Errorf("%w: cancelled -> confirmed", bookings.ErrInvalidTransition), http.StatusBadRequest},
		{fmt.Errorf("%w: too long", bookings.ErrInvalidInput), http.StatusBadRequest},
		{bookings.ErrSlotNotAvailable, http.StatusConflict},
		{bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle(rec, newRequest("9", `{"status":"confirmed"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
