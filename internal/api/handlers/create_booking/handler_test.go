package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	createBooking "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"offerId": 1,
	"bookingDate": "2026-09-07",
	"startTime": "10:00",
	"persons": 2,
	"customerName": "Jan Kowalski",
	"customerEmail": "jan@example.com",
	"customerPhone": "+48123456789"
}`

func doRequest(t *testing.T, uc CreateBookingUseCase, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_CreatedWithResponseBody(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:            7,
		OfferID:       1,
		PlaceID:       10,
		BookingDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Persons:       2,
		Status:        string(domain.StatusPending),
		PaymentStatus: string(domain.PaymentNotRequired),
		Source:        domain.SourceWeb,
	}}

	rec := doRequest(t, uc, validBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-09-07", resp.BookingDate)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_SourceFromUserHeader(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Status: string(domain.StatusPending)}}

	doRequest(t, uc, validBody, nil)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, domain.SourceWeb, uc.lastReq.Source)

	doRequest(t, uc, validBody, map[string]string{"X-User-ID": "42"})
	assert.Equal(t, domain.SourceAdmin, uc.lastReq.Source)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot fully booked", createBooking.ErrSlotFullyBooked, http.StatusConflict},
		{"slot not available", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"offer not found", createBooking.ErrOfferNotFound, http.StatusNotFound},
		{"date in the past", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"persons rejected", createBooking.ErrInvalidPersons, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tc.err}, validBody, nil)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"offerId": "one"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDateAndTime(t *testing.T) {
	badDate := strings.Replace(validBody, "2026-09-07", "07.09.2026", 1)
	rec := doRequest(t, &fakeUseCase{}, badDate, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")

	badTime := strings.Replace(validBody, `"10:00"`, `"10:70"`, 1)
	rec = doRequest(t, &fakeUseCase{}, badTime, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "HH:MM")
}
