package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/schedule"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// UseCase use case для получения слотов оффера на конкретную дату
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

// Execute возвращает все слоты оффера на дату с оценкой доступности.
// Чтение без записи: повторный вызов с теми же данными дает тот же результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.OfferID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем оффер; неактивный трактуется как отсутствующий
	offer, err := uc.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			return nil, ErrOfferNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: failed to get offer: %v", ErrInternal, err)
	}
	if !offer.IsActive {
		return nil, ErrOfferNotFound
	}

	// 3. Окна на день недели даты
	windows, err := uc.availabilityRepo.GetByOfferAndWeekday(ctx, req.OfferID, types.Weekday(req.Date))
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get availability windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
	}

	// 4. Активные бронирования на дату
	bookings, err := uc.bookingRepo.GetActiveByOfferAndDate(ctx, req.OfferID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Генерация и оценка слотов
	evaluated := schedule.EvaluateDay(windows, offer.DurationMinutes, bookings)

	slots := make([]SlotInfo, 0, len(evaluated))
	for _, s := range evaluated {
		slots = append(slots, SlotInfo{
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			Available:    s.IsAvailable(),
			CapacityLeft: s.CapacityLeft,
		})
	}

	uc.logger.Info("GetDaySlots: offer=%d, date=%s, slots=%d",
		req.OfferID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		OfferID: req.OfferID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
