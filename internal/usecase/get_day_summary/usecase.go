package get_day_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/schedule"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// UseCase use case для сводки доступности оффера по диапазону дат
type UseCase struct {
	offerRepo        OfferRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	offerRepo OfferRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		offerRepo:        offerRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Execute возвращает сводку доступности по каждому дню диапазона.
// Окна и бронирования загружаются по одному запросу на весь диапазон,
// дальше вся работа в памяти
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона
	if req.OfferID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
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

	// 2. Получаем оффер; неактивный трактуется как отсутствующий
	offer, err := uc.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			return nil, ErrOfferNotFound
		}
		uc.logger.Error("GetDaySummary: failed to get offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: failed to get offer: %v", ErrInternal, err)
	}
	if !offer.IsActive {
		return nil, ErrOfferNotFound
	}

	// 3. Все окна оффера, сгруппированные по дню недели
	windows, err := uc.availabilityRepo.GetByOffer(ctx, req.OfferID)
	if err != nil {
		uc.logger.Error("GetDaySummary: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	byWeekday := make(map[int][]*domain.AvailabilityWindow)
	for _, w := range windows {
		byWeekday[w.Weekday] = append(byWeekday[w.Weekday], w)
	}

	// 4. Все активные бронирования диапазона, сгруппированные по дате
	bookings, err := uc.bookingRepo.GetActiveByOfferBetween(ctx, req.OfferID, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetDaySummary: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	byDate := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.BookingDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], b)
	}

	// 5. Сводка по каждому дню
	result := make([]DaySummary, 0, len(days))
	for _, day := range days {
		dayWindows := byWeekday[types.Weekday(day)]
		dayBookings := byDate[day.Format(domain.DateFormat)]

		hasAvailability := false
		for _, w := range dayWindows {
			if w.IsUsable() {
				hasAvailability = true
				break
			}
		}

		evaluated := schedule.EvaluateDay(dayWindows, offer.DurationMinutes, dayBookings)

		isAvailable := false
		for i := range evaluated {
			if evaluated[i].IsAvailable() {
				isAvailable = true
				break
			}
		}

		result = append(result, DaySummary{
			Date:            day,
			IsAvailable:     isAvailable,
			HasAvailability: hasAvailability,
			TotalSlots:      len(evaluated),
			BookedSlots:     len(dayBookings),
		})
	}

	uc.logger.Info("GetDaySummary: offer=%d, days=%d", req.OfferID, len(result))

	return &Response{OfferID: req.OfferID, Days: result}, nil
}
