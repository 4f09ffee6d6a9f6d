package availability

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

func testWindow(weekday int) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		OfferID:            1,
		Weekday:            weekday,
		StartTime:          "10:00",
		EndTime:            "14:00",
		SlotLengthMinutes:  30,
		MaxBookingsPerSlot: 2,
	}
}

func TestReplaceForOffer_DeleteThenInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	// Сначала удаление всех окон оффера, затем по вставке на каждое новое
	mock.ExpectExec(`DELETE FROM offer_availability WHERE offer_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`INSERT INTO offer_availability .+ RETURNING id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))
	mock.ExpectQuery(`INSERT INTO offer_availability .+ RETURNING id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	repo := NewRepository(db)
	saved, err := repo.ReplaceForOffer(context.Background(), 1, []*domain.AvailabilityWindow{
		testWindow(0),
		testWindow(3),
	})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, int64(10), saved[0].ID)
	assert.Equal(t, int64(11), saved[1].ID)
	assert.Equal(t, int64(1), saved[0].OfferID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceForOffer_EmptySetOnlyDeletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM offer_availability WHERE offer_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewRepository(db)
	saved, err := repo.ReplaceForOffer(context.Background(), 1, nil)
	require.NoError(t, err)

	assert.Empty(t, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByOffer_OrderedByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(windowColumns).
		AddRow(int64(1), int64(1), 0, "10:00", "14:00", 30, 2, now).
		AddRow(int64(2), int64(1), 3, "09:00", "12:00", 60, 1, now)

	mock.ExpectQuery(`SELECT .+ FROM offer_availability WHERE offer_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	repo := NewRepository(db)
	windows, err := repo.GetByOffer(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, windows, 2)
	assert.Equal(t, int64(1), windows[0].ID)
	assert.Equal(t, 0, windows[0].Weekday)
	assert.Equal(t, 3, windows[1].Weekday)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByOfferAndWeekday_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM offer_availability WHERE .+ ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(windowColumns))

	repo := NewRepository(db)
	windows, err := repo.GetByOfferAndWeekday(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Empty(t, windows)
	require.NoError(t, mock.ExpectationsWereMet())
}
