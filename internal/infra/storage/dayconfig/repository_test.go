package dayconfig

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

var configColumns = []string{
	"place_id",
	"booking_mode",
	"blocked_dates",
	"seasonal_prices",
	"min_stay",
	"max_stay",
	"is_available",
	"enable_multi_booking",
	"daily_capacity",
	"created_at",
	"updated_at",
}

func TestGetByPlace_DecodesJSONBColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	blocked := []byte(`["2026-09-05","2026-12-24"]`)
	seasonal := []byte(`[{"start_date":"2026-06-01","end_date":"2026-08-31","price":250,"name":"summer"}]`)

	mock.ExpectQuery(`SELECT .+ FROM place_day_availability WHERE place_id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(configColumns).
			AddRow(int64(10), "daily", blocked, seasonal, 2, 14, true, false, 0, now, now))

	repo := NewRepository(db)
	cfg, err := repo.GetByPlace(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeDaily, cfg.BookingMode)
	require.Len(t, cfg.BlockedDates, 2)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), cfg.BlockedDates[0])

	require.Len(t, cfg.SeasonalPrices, 1)
	p := cfg.SeasonalPrices[0]
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), p.EndDate)
	assert.Equal(t, float64(250), p.Price)
	assert.Equal(t, "summer", p.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPlace_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM place_day_availability`).
		WillReturnRows(sqlmock.NewRows(configColumns))

	repo := NewRepository(db)
	_, err = repo.GetByPlace(context.Background(), 10)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_EncodesJSONBColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO place_day_availability .+ ON CONFLICT \(place_id\) DO UPDATE SET`).
		WithArgs(
			int64(10),
			"daily",
			[]byte(`["2026-09-05"]`),
			[]byte(`[{"start_date":"2026-06-01","end_date":"2026-08-31","price":250,"name":"summer"}]`),
			2,
			0,
			true,
			false,
			0,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := NewRepository(db)
	cfg := &domain.DayAvailabilityConfig{
		PlaceID:      10,
		BookingMode:  domain.ModeDaily,
		BlockedDates: []time.Time{time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)},
		SeasonalPrices: []domain.SeasonalPrice{{
			StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			Price:     250,
			Name:      "summer",
		}},
		MinStay:     2,
		IsAvailable: true,
	}

	saved, err := repo.Upsert(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, now, saved.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveStaysOverlapping_ScansStays(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	checkIn := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM place_day_bookings WHERE .+ ORDER BY check_in ASC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "place_id", "check_in", "check_out", "status", "customer_name", "customer_email", "created_at",
		}).AddRow(int64(1), int64(10), checkIn, checkOut, "confirmed", "Jan", "jan@example.com", now))

	repo := NewRepository(db)
	stays, err := repo.GetActiveStaysOverlapping(context.Background(), 10,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, stays, 1)
	assert.Equal(t, domain.StatusConfirmed, stays[0].Status)
	assert.True(t, stays[0].Covers(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, stays[0].Covers(checkOut))
	require.NoError(t, mock.ExpectationsWereMet())
}
