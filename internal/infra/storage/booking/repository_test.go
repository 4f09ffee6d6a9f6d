package booking

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/dbmetrics"
)

var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingColumns)
	for _, b := range bookings {
		rows.AddRow(
			b.ID, b.OfferID, b.PlaceID, b.BookingDate,
			string(b.StartTime), string(b.EndTime), b.Persons,
			string(b.Status), string(b.PaymentStatus),
			b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.Source,
			b.CreatedAt, b.UpdatedAt,
		)
	}
	return rows
}

func testBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		OfferID:       1,
		PlaceID:       10,
		BookingDate:   testDate,
		StartTime:     "10:00",
		EndTime:       "11:00",
		Persons:       2,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentNotRequired,
		CustomerName:  "Jan Kowalski",
		CustomerEmail: "jan@example.com",
		CustomerPhone: "+48123456789",
		Source:        domain.SourceWeb,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestGetActiveByOfferAndDate_NoLockOutsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Вне транзакции запрос завершается сортировкой, без FOR UPDATE
	mock.ExpectQuery(`SELECT .+ FROM offer_bookings WHERE .+ ORDER BY start_time ASC$`).
		WillReturnRows(bookingRows(testBooking(1)))

	repo := NewRepository(db)
	bookings, err := repo.GetActiveByOfferAndDate(context.Background(), 1, testDate)
	require.NoError(t, err)

	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByOfferAndDate_LocksRowsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM offer_bookings WHERE .+ FOR UPDATE$`).
		WillReturnRows(bookingRows())
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := dbmetrics.WithExecutor(context.Background(), tx)
	repo := NewRepository(db)

	bookings, err := repo.GetActiveByOfferAndDate(ctx, 1, testDate)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ReturnsGeneratedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO offer_bookings .+ RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	repo := NewRepository(db)
	b := testBooking(0)
	b.ID = 0

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM offer_bookings WHERE id = \$1`).
		WillReturnRows(bookingRows())

	repo := NewRepository(db)
	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE offer_bookings SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Updates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE offer_bookings SET`).
		WithArgs("cancelled", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	err = repo.UpdateStatus(context.Background(), 5, domain.StatusCancelled)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPlaceWithFilter_StatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM offer_bookings WHERE place_id = \$1 AND status = \$2`).
		WillReturnRows(bookingRows(testBooking(1)))

	repo := NewRepository(db)
	status := domain.StatusConfirmed
	bookings, err := repo.GetByPlaceWithFilter(context.Background(), domain.PlaceBookingsFilter{
		PlaceID: 10,
		Status:  &status,
	})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
