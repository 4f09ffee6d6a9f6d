package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	bookingRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/booking"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/integrations/notifier"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	notifierClient NotifierClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		notifierClient: notifierClient,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Confirm подтверждает бронирование. Подтверждается только pending;
// вместимость не пересчитывается - pending уже занимает место
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", id, booking.Status)
		return nil, ErrCannotConfirm
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	s.notify(ctx, notifier.EventBookingConfirmed, booking)

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование. Отменяется только pending;
// отмена освобождает вместимость слота автоматически - отменённые
// бронирования не учитываются при подсчете занятости
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	s.notify(ctx, notifier.EventBookingCancelled, booking)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetPlaceBookings получает бронирования площадки с фильтрацией
// по дате и статусу
func (s *Service) GetPlaceBookings(ctx context.Context, req *models.GetPlaceBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPlaceBookings: fetching bookings for place=%d", req.PlaceID)

	if req.PlaceID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPlaceBookings: invalid filter for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByPlaceWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPlaceBookings: repository error for place=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: GetPlaceBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPlaceBookings: successfully fetched %d bookings for place=%d", len(bookings), req.PlaceID)
	return models.FromDomainBookingList(bookings), nil
}

// notify отправляет уведомление о событии, сбои только логируются
func (s *Service) notify(ctx context.Context, event notifier.Event, b *domain.Booking) {
	if s.notifierClient == nil {
		return
	}
	_ = s.notifierClient.SendWithGracefulDegradation(ctx, &notifier.BookingNotification{
		Event:         event,
		BookingID:     b.ID,
		OfferID:       b.OfferID,
		PlaceID:       b.PlaceID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
	})
}
