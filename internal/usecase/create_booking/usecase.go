package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/integrations/notifier"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/schedule"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	offerRepo        OfferRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	notifierClient   NotifierClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	offerRepo OfferRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		offerRepo:        offerRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		notifierClient:   notifierClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка вместимости и вставка выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: offer=%d, date=%s, time=%s, persons=%d",
		req.OfferID, req.Date.Format(domain.DateFormat), req.StartTime, req.Persons)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date in the past: %s", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем оффер. Неактивный оффер трактуем так же, как отсутствующий
	offer, err := uc.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			uc.logger.Warn("CreateBooking: offer id=%d not found", req.OfferID)
			return nil, ErrOfferNotFound
		}
		uc.logger.Error("CreateBooking: failed to get offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: failed to get offer: %v", ErrInternal, err)
	}
	if !offer.IsActive {
		uc.logger.Warn("CreateBooking: offer id=%d is inactive", req.OfferID)
		return nil, ErrOfferNotFound
	}

	// 4. Проверяем размер группы
	if !offer.AcceptsPersons(req.Persons) {
		uc.logger.Warn("CreateBooking: persons=%d rejected by offer id=%d (min=%d, max=%d)",
			req.Persons, offer.ID, offer.MinPersons, offer.MaxPersons)
		return nil, ErrInvalidPersons
	}

	source := req.Source
	if source == "" {
		source = domain.SourceWeb
	}

	var result *domain.Booking

	// 5. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Окна доступности на день недели запрошенной даты
		windows, err := uc.availabilityRepo.GetByOfferAndWeekday(txCtx, req.OfferID, types.Weekday(req.Date))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability windows: %v", err)
			return fmt.Errorf("%w: failed to get availability windows: %v", ErrInternal, err)
		}

		// 5.2. Первое окно, в которое слот помещается целиком, легитимизирует запрос
		window := schedule.FindWindow(windows, req.StartTime, offer.DurationMinutes)
		if window == nil {
			uc.logger.Warn("CreateBooking: no window fits offer=%d, time=%s", req.OfferID, req.StartTime)
			return ErrSlotNotAvailable
		}

		// 5.3. Время окончания фиксируется при создании
		endTime, err := req.StartTime.AddMinutes(offer.DurationMinutes)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute end time: %v", err)
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		// 5.4. Активные бронирования на дату с блокировкой строк (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByOfferAndDate(txCtx, req.OfferID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.5. Занятость считается по точному времени начала слота
		occupancy := schedule.CountOccupancy(bookings)
		taken := occupancy[req.StartTime]
		if taken >= window.MaxBookingsPerSlot {
			uc.logger.Warn("CreateBooking: slot fully booked, %d/%d spots taken",
				taken, window.MaxBookingsPerSlot)
			return ErrSlotFullyBooked
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken", taken, window.MaxBookingsPerSlot)

		// 5.6. Создаем бронирование
		booking := &domain.Booking{
			OfferID:       req.OfferID,
			PlaceID:       offer.PlaceID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			EndTime:       endTime,
			Persons:       req.Persons,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentNotRequired,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Source:        source,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Уведомление отправляется вне транзакции, сбои не влияют на результат
	if uc.notifierClient != nil {
		_ = uc.notifierClient.SendWithGracefulDegradation(ctx, &notifier.BookingNotification{
			Event:         notifier.EventBookingCreated,
			BookingID:     result.ID,
			OfferID:       result.OfferID,
			PlaceID:       result.PlaceID,
			BookingDate:   result.BookingDate.Format(domain.DateFormat),
			StartTime:     result.StartTime.String(),
			EndTime:       result.EndTime.String(),
			CustomerName:  result.CustomerName,
			CustomerEmail: result.CustomerEmail,
			CustomerPhone: result.CustomerPhone,
		})
	}

	return &Response{
		ID:            result.ID,
		OfferID:       result.OfferID,
		PlaceID:       result.PlaceID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Persons:       result.Persons,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Source:        result.Source,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
