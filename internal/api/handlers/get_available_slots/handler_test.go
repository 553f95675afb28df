package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-GymService/internal/usecase/get_available_slots"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_OK(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: "2025-03-10"}).Return(&getAvailableSlots.Response{
		Date: day,
		Slots: []getAvailableSlots.Slot{{
			TrainerID:   1,
			TrainerName: "Anna",
			StartTime:   "09:00",
			EndTime:     "10:00",
			Start:       day.Add(9 * time.Hour),
			End:         day.Add(10 * time.Hour),
		}},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2025-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-10", resp.Date)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "Anna", resp.Slots[0].TrainerName)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "2025-03-10T09:00:00Z", resp.Slots[0].Start)
}

func TestHandler_BadDate(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrInvalidDate)
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=10.03.2025", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNumberOfCalls(t, "Execute", 1)
}
