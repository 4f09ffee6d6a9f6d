package get_next_slot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/schedule"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// UseCase use case для поиска ближайшего свободного слота
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

// ExecuteForOffer ищет ближайший свободный слот одного оффера в диапазоне дат
func (uc *UseCase) ExecuteForOffer(ctx context.Context, req *OfferRequest) (*OfferResponse, error) {
	if req.OfferID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}
	if err := validateRange(req.DateStart, req.DateEnd); err != nil {
		return nil, err
	}

	offer, err := uc.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			return nil, ErrOfferNotFound
		}
		uc.logger.Error("GetNextSlot: failed to get offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: failed to get offer: %v", ErrInternal, err)
	}
	if !offer.IsActive {
		return nil, ErrOfferNotFound
	}

	found, err := uc.scanOffer(ctx, offer, req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}
	if found == nil {
		uc.logger.Info("GetNextSlot: offer=%d, no free slot in range", req.OfferID)
		return &OfferResponse{Found: false}, nil
	}

	uc.logger.Info("GetNextSlot: offer=%d, found %s %s",
		req.OfferID, found.date.Format(domain.DateFormat), found.startTime)

	return &OfferResponse{
		Found:     true,
		Date:      found.date,
		StartTime: found.startTime,
	}, nil
}

// ExecuteForPlace ищет ближайший свободный слот среди всех активных офферов
// площадки. Офферы сканируются независимо и параллельно, затем выбирается
// глобальный минимум по паре (дата, время начала)
func (uc *UseCase) ExecuteForPlace(ctx context.Context, req *PlaceRequest) (*PlaceResponse, error) {
	if req.PlaceID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}
	if err := validateRange(req.DateStart, req.DateEnd); err != nil {
		return nil, err
	}

	offers, err := uc.offerRepo.GetActiveByPlace(ctx, req.PlaceID)
	if err != nil {
		uc.logger.Error("GetNextSlot: failed to get offers for place id=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get offers: %v", ErrInternal, err)
	}
	if len(offers) == 0 {
		return &PlaceResponse{Found: false}, nil
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		candidates []*candidate
		scanErr    error
	)

	for _, offer := range offers {
		wg.Add(1)
		go func(o *domain.Offer) {
			defer wg.Done()

			found, err := uc.scanOffer(ctx, o, req.DateStart, req.DateEnd)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if scanErr == nil {
					scanErr = err
				}
				return
			}
			if found != nil {
				candidates = append(candidates, found)
			}
		}(offer)
	}
	wg.Wait()

	if scanErr != nil {
		return nil, scanErr
	}

	best := pickBest(candidates)
	if best == nil {
		uc.logger.Info("GetNextSlot: place=%d, no free slot in range", req.PlaceID)
		return &PlaceResponse{Found: false}, nil
	}

	// Минимальная цена среди офферов, свободных в тот же момент
	priceFrom := best.offer.BasePrice
	for _, c := range candidates {
		if c.date.Equal(best.date) && c.startTime == best.startTime && c.offer.BasePrice < priceFrom {
			priceFrom = c.offer.BasePrice
		}
	}

	uc.logger.Info("GetNextSlot: place=%d, found %s %s (offer=%d)",
		req.PlaceID, best.date.Format(domain.DateFormat), best.startTime, best.offer.ID)

	return &PlaceResponse{
		Found:     true,
		Date:      best.date,
		StartTime: best.startTime,
		OfferID:   best.offer.ID,
		PriceFrom: priceFrom,
	}, nil
}

// scanOffer ищет первый свободный слот оффера, перебирая даты по возрастанию.
// Окна и бронирования загружаются по одному запросу на весь диапазон
func (uc *UseCase) scanOffer(ctx context.Context, offer *domain.Offer, from, to time.Time) (*candidate, error) {
	windows, err := uc.availabilityRepo.GetByOffer(ctx, offer.ID)
	if err != nil {
		uc.logger.Error("GetNextSlot: failed to get windows for offer id=%d: %v", offer.ID, err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}
	if len(windows) == 0 {
		return nil, nil
	}

	byWeekday := make(map[int][]*domain.AvailabilityWindow)
	for _, w := range windows {
		byWeekday[w.Weekday] = append(byWeekday[w.Weekday], w)
	}

	bookings, err := uc.bookingRepo.GetActiveByOfferBetween(ctx, offer.ID, from, to)
	if err != nil {
		uc.logger.Error("GetNextSlot: failed to get bookings for offer id=%d: %v", offer.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	byDate := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.BookingDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], b)
	}

	for _, day := range types.DateRange(from, to) {
		dayWindows := byWeekday[types.Weekday(day)]
		if len(dayWindows) == 0 {
			continue
		}

		evaluated := schedule.EvaluateDay(dayWindows, offer.DurationMinutes, byDate[day.Format(domain.DateFormat)])
		if first := schedule.FirstAvailable(evaluated); first != nil {
			return &candidate{offer: offer, date: day, startTime: first.StartTime}, nil
		}
	}

	return nil, nil
}

// pickBest возвращает кандидата с минимальной парой (дата, время начала)
func pickBest(candidates []*candidate) *candidate {
	var best *candidate
	for _, c := range candidates {
		if best == nil {
			best = c
			continue
		}
		if c.date.Before(best.date) {
			best = c
			continue
		}
		if c.date.Equal(best.date) && c.startTime.IsBefore(best.startTime) {
			best = c
		}
	}
	return best
}

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: dateStart and dateEnd are required", ErrInvalidInput)
	}
	if to.Before(from) {
		return ErrInvalidRange
	}
	if len(types.DateRange(from, to)) > domain.MaxRangeDays {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, domain.MaxRangeDays)
	}
	return nil
}
