package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/dbmetrics"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/psqlbuilder"
)

var windowColumns = []string{
	"id",
	"offer_id",
	"weekday",
	"start_time",
	"end_time",
	"slot_length_minutes",
	"max_bookings_per_slot",
	"created_at",
}

// Repository репозиторий недельных окон доступности.
// Порядок хранения (id ASC) — порядок создания; он управляет правилом
// "первое окно побеждает" при пересечениях
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByOfferAndWeekday получает все окна оффера на день недели (Monday=0)
func (r *Repository) GetByOfferAndWeekday(ctx context.Context, offerID int64, weekday int) ([]*domain.AvailabilityWindow, error) {
	return r.getWindows(ctx, squirrel.Eq{"offer_id": offerID, "weekday": weekday}, "GetByOfferAndWeekday")
}

// GetByOffer получает все окна оффера
func (r *Repository) GetByOffer(ctx context.Context, offerID int64) ([]*domain.AvailabilityWindow, error) {
	return r.getWindows(ctx, squirrel.Eq{"offer_id": offerID}, "GetByOffer")
}

// ReplaceForOffer заменяет все окна оффера целиком: delete-all-then-recreate.
// Частичного обновления окон нет — владелец сохраняет расписание всегда
// полным списком. Вызывается внутри транзакции
func (r *Repository) ReplaceForOffer(ctx context.Context, offerID int64, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("offer_availability").
		Where(squirrel.Eq{"offer_id": offerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForOffer - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForOffer - execute delete: %v", ErrExecQuery, err)
	}

	created := make([]*domain.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		query, args, err := psqlbuilder.Insert("offer_availability").
			Columns(
				"offer_id",
				"weekday",
				"start_time",
				"end_time",
				"slot_length_minutes",
				"max_bookings_per_slot",
			).
			Values(
				offerID,
				w.Weekday,
				w.StartTime,
				w.EndTime,
				w.SlotLengthMinutes,
				w.MaxBookingsPerSlot,
			).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceForOffer - build insert query: %v", ErrBuildQuery, err)
		}

		inserted := *w
		inserted.OfferID = offerID

		var createdAt sql.NullTime
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&inserted.ID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ReplaceForOffer - execute insert: %v", ErrExecQuery, err)
		}
		inserted.CreatedAt = createdAt.Time

		created = append(created, &inserted)
	}

	return created, nil
}

func (r *Repository) getWindows(ctx context.Context, where squirrel.Eq, op string) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("offer_availability").
		Where(where).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		var w domain.AvailabilityWindow
		var createdAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&w.OfferID,
			&w.Weekday,
			&w.StartTime,
			&w.EndTime,
			&w.SlotLengthMinutes,
			&w.MaxBookingsPerSlot,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		w.CreatedAt = createdAt.Time
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return windows, nil
}
