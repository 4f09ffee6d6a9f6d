package dayconfig

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	dayconfigRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/dayconfig"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig/models"
)

type fakeConfigRepo struct {
	cfg *domain.DayAvailabilityConfig
}

func (f *fakeConfigRepo) GetByPlace(_ context.Context, placeID int64) (*domain.DayAvailabilityConfig, error) {
	if f.cfg == nil || f.cfg.PlaceID != placeID {
		return nil, dayconfigRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.DayAvailabilityConfig) (*domain.DayAvailabilityConfig, error) {
	cfg.UpdatedAt = time.Now()
	f.cfg = cfg
	return cfg, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdate() *models.UpdateRequest {
	return &models.UpdateRequest{
		PlaceID:     10,
		BookingMode: "daily",
		MinStay:     2,
		MaxStay:     14,
		IsAvailable: true,
	}
}

func TestGet_MissingConfigReturnsDefaults(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	resp, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.PlaceID)
	assert.Equal(t, string(domain.ModeDaily), resp.BookingMode)
	assert.Equal(t, domain.DefaultMinStay, resp.MinStay)
	assert.True(t, resp.IsAvailable)
	assert.Empty(t, resp.BlockedDates)
}

func TestUpdate_SavesConfig(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, nopLogger{})

	req := validUpdate()
	req.BlockedDates = []string{"2026-09-05", "2026-09-06"}
	req.SeasonalPrices = []models.SeasonalPriceInput{
		{StartDate: "2026-06-01", EndDate: "2026-08-31", Price: 250, Name: "summer"},
	}

	resp, err := svc.Update(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-09-05", "2026-09-06"}, resp.BlockedDates)
	require.Len(t, resp.SeasonalPrices, 1)
	assert.Equal(t, float64(250), resp.SeasonalPrices[0].Price)
	assert.Equal(t, 2, resp.MinStay)
	assert.Equal(t, 14, resp.MaxStay)
	require.NotNil(t, repo.cfg)
	assert.Equal(t, domain.ModeDaily, repo.cfg.BookingMode)
}

func TestUpdate_ZeroMinStayDefaults(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	req := validUpdate()
	req.MinStay = 0
	req.MaxStay = 0

	resp, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMinStay, resp.MinStay)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UpdateRequest)
		wantErr error
	}{
		{"unknown mode", func(r *models.UpdateRequest) { r.BookingMode = "weekly" }, ErrInvalidBookingMode},
		{"multi-booking without capacity", func(r *models.UpdateRequest) {
			r.EnableMultiBooking = true
			r.DailyCapacity = 0
		}, ErrInvalidCapacity},
		{"max stay below min stay", func(r *models.UpdateRequest) { r.MinStay, r.MaxStay = 5, 3 }, ErrInvalidStay},
		{"negative max stay", func(r *models.UpdateRequest) { r.MaxStay = -1 }, ErrInvalidStay},
		{"malformed blocked date", func(r *models.UpdateRequest) { r.BlockedDates = []string{"05.09.2026"} }, ErrInvalidDate},
		{"malformed seasonal date", func(r *models.UpdateRequest) {
			r.SeasonalPrices = []models.SeasonalPriceInput{{StartDate: "bad", EndDate: "2026-08-31", Price: 100}}
		}, ErrInvalidDate},
		{"inverted seasonal period", func(r *models.UpdateRequest) {
			r.SeasonalPrices = []models.SeasonalPriceInput{{StartDate: "2026-08-31", EndDate: "2026-06-01", Price: 100}}
		}, ErrInvalidSeasonalPeriod},
		{"negative seasonal price", func(r *models.UpdateRequest) {
			r.SeasonalPrices = []models.SeasonalPriceInput{{StartDate: "2026-06-01", EndDate: "2026-08-31", Price: -1}}
		}, ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&fakeConfigRepo{}, nopLogger{})

			req := validUpdate()
			tc.mutate(req)

			_, err := svc.Update(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestToggleBlockedDate_AddsAndRemoves(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, nopLogger{})

	// Первое переключение блокирует дату (конфигурация создается с дефолтами)
	resp, err := svc.ToggleBlockedDate(context.Background(), &models.ToggleBlockedDateRequest{
		PlaceID: 10,
		Date:    "2026-09-05",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-05"}, resp.BlockedDates)

	// Второе переключение той же даты освобождает её
	resp, err = svc.ToggleBlockedDate(context.Background(), &models.ToggleBlockedDateRequest{
		PlaceID: 10,
		Date:    "2026-09-05",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BlockedDates)
}

func TestToggleBlockedDate_InvalidDate(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	_, err := svc.ToggleBlockedDate(context.Background(), &models.ToggleBlockedDateRequest{
		PlaceID: 10,
		Date:    "not-a-date",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
