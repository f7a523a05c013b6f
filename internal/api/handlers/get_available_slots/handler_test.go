package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/alice/reunion-30-min/slots"+query, nil)
	return mux.SetURLVars(req, map[string]string{
		"username":  "alice",
		"eventSlug": "reunion-30-min",
	})
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:  "2025-11-03",
		Slots: []getAvailableSlots.Slot{{Time: "09:00"}, {Time: "09:15"}},
	}}
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("?date=2025-11-03"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &getAvailableSlots.Request{Username: "alice", EventSlug: "reunion-30-min", Date: "2025-11-03"}, uc.got)
	assert.JSONEq(t, `{"date":"2025-11-03","slots":[{"time":"09:00"},{"time":"09:15"}]}`, rec.Body.String())
}

func TestHandler_EmptySlotsEncodeAsArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{Date: "2025-11-08"}}
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("?date=2025-11-08"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2025-11-08","slots":[]}`, rec.Body.String())
}

func TestHandler_MissingDate(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest(""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{getAvailableSlots.ErrInvalidDate, http.StatusBadRequest, msgInvalidDate},
		{getAvailableSlots.ErrHostNotFound, http.StatusNotFound, msgHostNotFound},
		{getAvailableSlots.ErrEventTypeNotFound, http.StatusNotFound, msgEventTypeNotFound},
		{getAvailableSlots.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, newRequest("?date=2025-13-40"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMsg, body["error"])
			}
		})
	}
}
