package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/dbmetrics"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"offer_id",
	"place_id",
	"booking_date",
	"start_time",
	"end_time",
	"persons",
	"status",
	"payment_status",
	"customer_name",
	"customer_email",
	"customer_phone",
	"source",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований офферов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование. Вставка — единственный финализирующий шаг
// размещения: либо строка записана целиком, либо не записана вовсе.
// Внутри сериализуемой транзакции (см. usecase create_booking) конкурентные
// вставки в один слот не могут обе пройти проверку вместимости
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("offer_bookings").
		Columns(
			"offer_id",
			"place_id",
			"booking_date",
			"start_time",
			"end_time",
			"persons",
			"status",
			"payment_status",
			"customer_name",
			"customer_email",
			"customer_phone",
			"source",
		).
		Values(
			b.OfferID,
			b.PlaceID,
			b.BookingDate,
			b.StartTime,
			b.EndTime,
			b.Persons,
			b.Status,
			b.PaymentStatus,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.Source,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("offer_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetActiveByOfferAndDate получает активные бронирования оффера на дату,
// отсортированные по времени начала.
//
// Внутри транзакции добавляется FOR UPDATE: проверка вместимости перед
// вставкой блокирует конкурирующие размещения в те же слоты — это часть
// защиты от гонки check-then-act в usecase создания бронирования
func (r *Repository) GetActiveByOfferAndDate(ctx context.Context, offerID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("offer_bookings").
		Where(squirrel.Eq{"offer_id": offerID, "booking_date": date}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByOfferAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByOfferAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows, "GetActiveByOfferAndDate")
}

// GetActiveByOfferBetween получает активные бронирования оффера за период
// дат включительно. Используется календарными запросами
func (r *Repository) GetActiveByOfferBetween(ctx context.Context, offerID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("offer_bookings").
		Where(squirrel.Eq{"offer_id": offerID}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByOfferBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByOfferBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows, "GetActiveByOfferBetween")
}

// GetByPlaceWithFilter получает бронирования всех офферов площадки с
// фильтрацией по дате и статусу. Хостовый список заявок
func (r *Repository) GetByPlaceWithFilter(ctx context.Context, filter domain.PlaceBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("offer_bookings").
		Where(squirrel.Eq{"place_id": filter.PlaceID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings()})
	}

	// Для конкретной даты сортируем по времени, иначе сначала новые
	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows, "GetByPlaceWithFilter")
}

// UpdateStatus обновляет статус бронирования.
// Подтверждение и отмена — чистые переключения статуса: доступность не
// пересчитывается, отмена освобождает вместимость сама собой, потому что
// отменённые бронирования не попадают в подсчёт занятости
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("offer_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.OfferID,
		&b.PlaceID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.Persons,
		&b.Status,
		&b.PaymentStatus,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.Source,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows, op string) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}
