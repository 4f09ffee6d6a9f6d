package get_day_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	dayconfigRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/dayconfig"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// UseCase use case дневного календаря площадки (параллельная модель
// доступности для посуточных бронирований)
type UseCase struct {
	dayConfigRepo DayConfigRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(dayConfigRepo DayConfigRepository, logger Logger) *UseCase {
	return &UseCase{
		dayConfigRepo: dayConfigRepo,
		logger:        logger,
	}
}

// Execute строит календарь доступности по каждому дню диапазона.
// Занятость считается точным подсчетом проживаний, покрывающих конкретный
// день: интервал [check_in, check_out), день выезда свободен для следующего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона
	if req.PlaceID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidRange
	}

	days := types.DateRange(req.StartDate, req.EndDate)
	if len(days) > domain.MaxRangeDays {
		return nil, fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, domain.MaxRangeDays)
	}

	// 2. Конфигурация площадки; отсутствующая строка заменяется значениями
	// по умолчанию
	cfg, err := uc.dayConfigRepo.GetByPlace(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, dayconfigRepo.ErrConfigNotFound) {
			cfg = domain.DefaultDayAvailabilityConfig(req.PlaceID)
		} else {
			uc.logger.Error("GetDayCalendar: failed to get config for place id=%d: %v", req.PlaceID, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
	}

	// 3. Активные проживания, пересекающие диапазон
	stays, err := uc.dayConfigRepo.GetActiveStaysOverlapping(ctx, req.PlaceID, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetDayCalendar: failed to get stays for place id=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Календарь по дням
	result := make([]CalendarDay, 0, len(days))
	for _, day := range days {
		blocked := cfg.IsBlocked(day)
		price := cfg.PriceFor(day, req.BasePrice)

		// Точный подсчет проживаний, покрывающих именно этот день
		booked := 0
		for _, s := range stays {
			if s.IsActive() && s.Covers(day) {
				booked++
			}
		}

		day := CalendarDay{
			Date:        day,
			Blocked:     blocked,
			Price:       price,
			BookedCount: booked,
		}

		switch {
		case blocked || !cfg.IsAvailable:
			day.Available = false
		case cfg.MultiBookingEnabled():
			day.Available = booked < cfg.DailyCapacity
			day.OccupancyRate = domain.OccupancyRate(booked, cfg.DailyCapacity)
		default:
			day.Available = booked == 0
		}

		result = append(result, day)
	}

	uc.logger.Info("GetDayCalendar: place=%d, days=%d", req.PlaceID, len(result))

	return &Response{PlaceID: req.PlaceID, Days: result}, nil
}
