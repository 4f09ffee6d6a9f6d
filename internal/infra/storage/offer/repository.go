package offer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/dbmetrics"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/psqlbuilder"
)

var offerColumns = []string{
	"id",
	"place_id",
	"title",
	"duration_minutes",
	"currency",
	"base_price",
	"min_persons",
	"max_persons",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий офферов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория офферов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает оффер по ID независимо от флага is_active.
// Отличать неактивный оффер от отсутствующего — забота вызывающего слоя
// (наружу оба случая отдаются одинаково)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOffer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offer: %v", ErrScanRow, err)
	}

	return o, nil
}

// GetActiveByPlace получает все активные офферы площадки в порядке создания
func (r *Repository) GetActiveByPlace(ctx context.Context, placeID int64) ([]*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"place_id": placeID, "is_active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPlace - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPlace - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offers := make([]*domain.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByPlace - scan row: %v", ErrScanRow, err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPlace - rows error: %v", ErrScanRow, err)
	}

	return offers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOffer(row rowScanner) (*domain.Offer, error) {
	var o domain.Offer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.PlaceID,
		&o.Title,
		&o.DurationMinutes,
		&o.Currency,
		&o.BasePrice,
		&o.MinPersons,
		&o.MaxPersons,
		&o.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
