package get_day_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	dayconfigRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/dayconfig"
)

type fakeDayConfigRepo struct {
	cfg   *domain.DayAvailabilityConfig
	stays []*domain.DayBooking
}

func (f *fakeDayConfigRepo) GetByPlace(_ context.Context, placeID int64) (*domain.DayAvailabilityConfig, error) {
	if f.cfg == nil || f.cfg.PlaceID != placeID {
		return nil, dayconfigRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

func (f *fakeDayConfigRepo) GetActiveStaysOverlapping(_ context.Context, placeID int64, from, to time.Time) ([]*domain.DayBooking, error) {
	var result []*domain.DayBooking
	for _, s := range f.stays {
		if s.PlaceID == placeID && s.CheckIn.Before(to.AddDate(0, 0, 1)) && s.CheckOut.After(from) {
			result = append(result, s)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(day int) time.Time {
	return time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC)
}

func defaultConfig() *domain.DayAvailabilityConfig {
	cfg := domain.DefaultDayAvailabilityConfig(10)
	return cfg
}

func stay(checkIn, checkOut time.Time) *domain.DayBooking {
	return &domain.DayBooking{
		PlaceID:  10,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   domain.StatusConfirmed,
	}
}

func execute(t *testing.T, repo *fakeDayConfigRepo, start, end time.Time, basePrice float64) *Response {
	t.Helper()
	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		PlaceID:   10,
		StartDate: start,
		EndDate:   end,
		BasePrice: basePrice,
	})
	require.NoError(t, err)
	return resp
}

func TestExecute_CheckOutDayIsFree(t *testing.T) {
	// Проживание 5-8: занимает дни 5, 6, 7; день выезда 8 свободен
	repo := &fakeDayConfigRepo{
		cfg:   defaultConfig(),
		stays: []*domain.DayBooking{stay(date(5), date(8))},
	}

	resp := execute(t, repo, date(4), date(9), 100)
	require.Len(t, resp.Days, 6)

	expected := []bool{true, false, false, false, true, true}
	for i, day := range resp.Days {
		assert.Equal(t, expected[i], day.Available, "day %s", day.Date.Format("2006-01-02"))
	}
	assert.Equal(t, 1, resp.Days[1].BookedCount)
	assert.Equal(t, 0, resp.Days[4].BookedCount)
}

func TestExecute_BackToBackStays(t *testing.T) {
	// Выезд 8-го и заезд 8-го не конфликтуют даже в одиночном режиме
	repo := &fakeDayConfigRepo{
		cfg: defaultConfig(),
		stays: []*domain.DayBooking{
			stay(date(5), date(8)),
			stay(date(8), date(10)),
		},
	}

	resp := execute(t, repo, date(7), date(9), 100)

	assert.False(t, resp.Days[0].Available) // 7: первое проживание
	assert.False(t, resp.Days[1].Available) // 8: второе проживание
	assert.Equal(t, 1, resp.Days[1].BookedCount)
}

func TestExecute_BlockedDate(t *testing.T) {
	cfg := defaultConfig()
	cfg.BlockedDates = []time.Time{date(6)}
	repo := &fakeDayConfigRepo{cfg: cfg}

	resp := execute(t, repo, date(5), date(7), 100)

	assert.True(t, resp.Days[0].Available)
	assert.False(t, resp.Days[1].Available)
	assert.True(t, resp.Days[1].Blocked)
	assert.True(t, resp.Days[2].Available)
}

func TestExecute_SeasonalPriceFirstMatchWins(t *testing.T) {
	cfg := defaultConfig()
	cfg.SeasonalPrices = []domain.SeasonalPrice{
		{StartDate: date(5), EndDate: date(10), Price: 250, Name: "high season"},
		{StartDate: date(8), EndDate: date(12), Price: 180, Name: "late summer"},
	}
	repo := &fakeDayConfigRepo{cfg: cfg}

	resp := execute(t, repo, date(4), date(13), 100)

	assert.Equal(t, float64(100), resp.Days[0].Price) // 4: базовая
	assert.Equal(t, float64(250), resp.Days[1].Price) // 5: первый период
	assert.Equal(t, float64(250), resp.Days[4].Price) // 8: пересечение, правит первый
	assert.Equal(t, float64(180), resp.Days[7].Price) // 11: второй период
	assert.Equal(t, float64(100), resp.Days[9].Price) // 13: базовая
}

func TestExecute_MultiBookingCapacity(t *testing.T) {
	cfg := defaultConfig()
	cfg.EnableMultiBooking = true
	cfg.DailyCapacity = 3
	repo := &fakeDayConfigRepo{
		cfg: cfg,
		stays: []*domain.DayBooking{
			stay(date(5), date(7)),
			stay(date(5), date(7)),
		},
	}

	resp := execute(t, repo, date(5), date(5), 100)

	day := resp.Days[0]
	assert.True(t, day.Available) // 2 из 3
	assert.Equal(t, 2, day.BookedCount)
	assert.Equal(t, 67, day.OccupancyRate)
}

func TestExecute_MultiBookingFull(t *testing.T) {
	cfg := defaultConfig()
	cfg.EnableMultiBooking = true
	cfg.DailyCapacity = 2
	repo := &fakeDayConfigRepo{
		cfg: cfg,
		stays: []*domain.DayBooking{
			stay(date(5), date(7)),
			stay(date(5), date(7)),
		},
	}

	resp := execute(t, repo, date(5), date(5), 100)

	day := resp.Days[0]
	assert.False(t, day.Available)
	assert.Equal(t, 100, day.OccupancyRate)
}

func TestExecute_CancelledStayFreesDay(t *testing.T) {
	cancelled := stay(date(5), date(8))
	cancelled.Status = domain.StatusCancelled
	repo := &fakeDayConfigRepo{
		cfg:   defaultConfig(),
		stays: []*domain.DayBooking{cancelled},
	}

	resp := execute(t, repo, date(5), date(5), 100)

	assert.True(t, resp.Days[0].Available)
	assert.Equal(t, 0, resp.Days[0].BookedCount)
}

func TestExecute_MissingConfigUsesDefaults(t *testing.T) {
	// Конфигурации нет: площадка доступна, цена базовая
	repo := &fakeDayConfigRepo{}

	resp := execute(t, repo, date(5), date(6), 150)

	require.Len(t, resp.Days, 2)
	assert.True(t, resp.Days[0].Available)
	assert.Equal(t, float64(150), resp.Days[0].Price)
}

func TestExecute_UnavailablePlace(t *testing.T) {
	cfg := defaultConfig()
	cfg.IsAvailable = false
	repo := &fakeDayConfigRepo{cfg: cfg}

	resp := execute(t, repo, date(5), date(6), 100)

	for _, day := range resp.Days {
		assert.False(t, day.Available)
	}
}

func TestExecute_RangeValidation(t *testing.T) {
	uc := NewUseCase(&fakeDayConfigRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PlaceID:   10,
		StartDate: date(10),
		EndDate:   date(5),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{
		PlaceID:   10,
		StartDate: date(1),
		EndDate:   date(1).AddDate(0, 0, domain.MaxRangeDays+10),
	})
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}
