package dayconfig

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	dayconfigRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/dayconfig"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig/models"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// Service сервис конфигурации дневной модели доступности площадки
type Service struct {
	configRepo DayConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(configRepo DayConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get возвращает конфигурацию площадки; площадка без сохранённой строки
// получает доменные значения по умолчанию
func (s *Service) Get(ctx context.Context, placeID int64) (*models.ConfigResponse, error) {
	if placeID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	cfg, err := s.configRepo.GetByPlace(ctx, placeID)
	if err != nil {
		if errors.Is(err, dayconfigRepo.ErrConfigNotFound) {
			return models.FromDomainConfig(domain.DefaultDayAvailabilityConfig(placeID)), nil
		}
		s.logger.Error("Get: repository error for place id=%d: %v", placeID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update полностью заменяет конфигурацию площадки
func (s *Service) Update(ctx context.Context, req *models.UpdateRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating day config for place=%d", req.PlaceID)

	if req.PlaceID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	cfg, err := toDomainConfig(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for place=%d: %v", req.PlaceID, err)
		return nil, err
	}

	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: failed to save config for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated day config for place=%d", req.PlaceID)
	return models.FromDomainConfig(saved), nil
}

// ToggleBlockedDate переключает одну дату в списке блокировок:
// заблокированная дата освобождается, свободная блокируется
func (s *Service) ToggleBlockedDate(ctx context.Context, req *models.ToggleBlockedDateRequest) (*models.ConfigResponse, error) {
	s.logger.Info("ToggleBlockedDate: place=%d, date=%s", req.PlaceID, req.Date)

	if req.PlaceID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	cfg, err := s.configRepo.GetByPlace(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, dayconfigRepo.ErrConfigNotFound) {
			cfg = domain.DefaultDayAvailabilityConfig(req.PlaceID)
		} else {
			s.logger.Error("ToggleBlockedDate: repository error for place id=%d: %v", req.PlaceID, err)
			return nil, fmt.Errorf("%w: ToggleBlockedDate - repository error: %v", ErrInternal, err)
		}
	}

	cfg.BlockedDates = toggleDate(cfg.BlockedDates, date)

	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("ToggleBlockedDate: failed to save config for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: ToggleBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleBlockedDate: place=%d, date=%s, blocked=%d",
		req.PlaceID, req.Date, len(saved.BlockedDates))
	return models.FromDomainConfig(saved), nil
}

// toggleDate убирает дату из списка, если она там есть, иначе добавляет
func toggleDate(dates []time.Time, date time.Time) []time.Time {
	for i, d := range dates {
		if d.Equal(date) {
			return append(dates[:i], dates[i+1:]...)
		}
	}
	return append(dates, date)
}

// toDomainConfig валидирует и конвертирует запрос в domain модель
func toDomainConfig(req *models.UpdateRequest) (*domain.DayAvailabilityConfig, error) {
	mode := domain.BookingMode(req.BookingMode)
	if mode != domain.ModeDaily && mode != domain.ModeHourly {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBookingMode, req.BookingMode)
	}

	if req.EnableMultiBooking && req.DailyCapacity < 1 {
		return nil, ErrInvalidCapacity
	}

	minStay := req.MinStay
	if minStay == 0 {
		minStay = domain.DefaultMinStay
	}
	if minStay < 1 {
		return nil, fmt.Errorf("%w: minStay must be at least 1", ErrInvalidStay)
	}
	if req.MaxStay < 0 || (req.MaxStay > 0 && req.MaxStay < minStay) {
		return nil, fmt.Errorf("%w: maxStay must be 0 or >= minStay", ErrInvalidStay)
	}

	blocked := make([]time.Time, 0, len(req.BlockedDates))
	for _, raw := range req.BlockedDates {
		d, err := types.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: blocked date %q", ErrInvalidDate, raw)
		}
		blocked = append(blocked, d)
	}

	seasonal := make([]domain.SeasonalPrice, 0, len(req.SeasonalPrices))
	for _, p := range req.SeasonalPrices {
		start, err := types.ParseDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: seasonal start %q", ErrInvalidDate, p.StartDate)
		}
		end, err := types.ParseDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: seasonal end %q", ErrInvalidDate, p.EndDate)
		}
		if start.After(end) {
			return nil, ErrInvalidSeasonalPeriod
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: seasonal price must not be negative", ErrInvalidInput)
		}
		seasonal = append(seasonal, domain.SeasonalPrice{
			StartDate: start,
			EndDate:   end,
			Price:     p.Price,
			Name:      p.Name,
		})
	}

	return &domain.DayAvailabilityConfig{
		PlaceID:            req.PlaceID,
		BookingMode:        mode,
		BlockedDates:       blocked,
		SeasonalPrices:     seasonal,
		MinStay:            minStay,
		MaxStay:            req.MaxStay,
		IsAvailable:        req.IsAvailable,
		EnableMultiBooking: req.EnableMultiBooking,
		DailyCapacity:      req.DailyCapacity,
	}, nil
}
