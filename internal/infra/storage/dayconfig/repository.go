package dayconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/dbmetrics"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/psqlbuilder"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// Repository репозиторий конфигурации дневной модели доступности
// и дневных (посуточных) бронирований площадки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// jsonb-представление полей конфигурации: даты храним строками YYYY-MM-DD
type storedSeasonalPrice struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

// GetByPlace получает конфигурацию площадки.
// ErrConfigNotFound — площадка без строки; вызывающий слой подставляет
// доменные значения по умолчанию
func (r *Repository) GetByPlace(ctx context.Context, placeID int64) (*domain.DayAvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
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
	).
		From("place_day_availability").
		Where(squirrel.Eq{"place_id": placeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlace - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.DayAvailabilityConfig
	var blockedRaw, seasonalRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.PlaceID,
		&cfg.BookingMode,
		&blockedRaw,
		&seasonalRaw,
		&cfg.MinStay,
		&cfg.MaxStay,
		&cfg.IsAvailable,
		&cfg.EnableMultiBooking,
		&cfg.DailyCapacity,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlace - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	if cfg.BlockedDates, err = decodeBlockedDates(blockedRaw); err != nil {
		return nil, fmt.Errorf("%w: GetByPlace - blocked_dates: %v", ErrScanRow, err)
	}
	if cfg.SeasonalPrices, err = decodeSeasonalPrices(seasonalRaw); err != nil {
		return nil, fmt.Errorf("%w: GetByPlace - seasonal_prices: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// Upsert создает или полностью заменяет конфигурацию площадки
func (r *Repository) Upsert(ctx context.Context, cfg *domain.DayAvailabilityConfig) (*domain.DayAvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blockedRaw, err := encodeBlockedDates(cfg.BlockedDates)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - blocked_dates: %v", ErrEncode, err)
	}
	seasonalRaw, err := encodeSeasonalPrices(cfg.SeasonalPrices)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - seasonal_prices: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("place_day_availability").
		Columns(
			"place_id",
			"booking_mode",
			"blocked_dates",
			"seasonal_prices",
			"min_stay",
			"max_stay",
			"is_available",
			"enable_multi_booking",
			"daily_capacity",
		).
		Values(
			cfg.PlaceID,
			cfg.BookingMode,
			blockedRaw,
			seasonalRaw,
			cfg.MinStay,
			cfg.MaxStay,
			cfg.IsAvailable,
			cfg.EnableMultiBooking,
			cfg.DailyCapacity,
		).
		Suffix(`ON CONFLICT (place_id) DO UPDATE SET
			booking_mode = EXCLUDED.booking_mode,
			blocked_dates = EXCLUDED.blocked_dates,
			seasonal_prices = EXCLUDED.seasonal_prices,
			min_stay = EXCLUDED.min_stay,
			max_stay = EXCLUDED.max_stay,
			is_available = EXCLUDED.is_available,
			enable_multi_booking = EXCLUDED.enable_multi_booking,
			daily_capacity = EXCLUDED.daily_capacity,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// GetActiveStaysOverlapping получает активные посуточные бронирования,
// пересекающие период [from, to] хотя бы одним днём. Интервал проживания
// полуоткрытый: день выезда свободен
func (r *Repository) GetActiveStaysOverlapping(ctx context.Context, placeID int64, from, to time.Time) ([]*domain.DayBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"place_id",
		"check_in",
		"check_out",
		"status",
		"customer_name",
		"customer_email",
		"created_at",
	).
		From("place_day_bookings").
		Where(squirrel.Eq{"place_id": placeID}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		Where(squirrel.LtOrEq{"check_in": to}).
		Where(squirrel.Gt{"check_out": from}).
		OrderBy("check_in ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveStaysOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveStaysOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stays := make([]*domain.DayBooking, 0)
	for rows.Next() {
		var s domain.DayBooking
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.PlaceID,
			&s.CheckIn,
			&s.CheckOut,
			&s.Status,
			&s.CustomerName,
			&s.CustomerEmail,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveStaysOverlapping - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		stays = append(stays, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveStaysOverlapping - rows error: %v", ErrScanRow, err)
	}

	return stays, nil
}

func encodeBlockedDates(dates []time.Time) ([]byte, error) {
	encoded := make([]string, len(dates))
	for i, d := range dates {
		encoded[i] = types.FormatDate(d)
	}
	return json.Marshal(encoded)
}

func decodeBlockedDates(raw []byte) ([]time.Time, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var encoded []string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(encoded))
	for _, s := range encoded {
		d, err := types.ParseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func encodeSeasonalPrices(prices []domain.SeasonalPrice) ([]byte, error) {
	encoded := make([]storedSeasonalPrice, len(prices))
	for i, p := range prices {
		encoded[i] = storedSeasonalPrice{
			StartDate: types.FormatDate(p.StartDate),
			EndDate:   types.FormatDate(p.EndDate),
			Price:     p.Price,
			Name:      p.Name,
		}
	}
	return json.Marshal(encoded)
}

func decodeSeasonalPrices(raw []byte) ([]domain.SeasonalPrice, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var encoded []storedSeasonalPrice
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}
	prices := make([]domain.SeasonalPrice, 0, len(encoded))
	for _, p := range encoded {
		start, err := types.ParseDate(p.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := types.ParseDate(p.EndDate)
		if err != nil {
			return nil, err
		}
		prices = append(prices, domain.SeasonalPrice{
			StartDate: start,
			EndDate:   end,
			Price:     p.Price,
			Name:      p.Name,
		})
	}
	return prices, nil
}
