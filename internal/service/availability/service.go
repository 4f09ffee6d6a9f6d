package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/availability/models"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// Service сервис управления еженедельными правилами доступности оффера
type Service struct {
	offerRepo        OfferRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	offerRepo OfferRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		offerRepo:        offerRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByOffer возвращает все правила оффера в порядке создания
func (s *Service) GetByOffer(ctx context.Context, offerID int64) (*models.WindowListResponse, error) {
	if offerID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	if _, err := s.getActiveOffer(ctx, offerID); err != nil {
		return nil, err
	}

	windows, err := s.availabilityRepo.GetByOffer(ctx, offerID)
	if err != nil {
		s.logger.Error("GetByOffer: repository error for offer id=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: GetByOffer - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(offerID, windows), nil
}

// Replace полностью заменяет набор правил оффера.
// Замена атомарна: старые правила удаляются и новые вставляются
// в одной транзакции
func (s *Service) Replace(ctx context.Context, req *models.ReplaceRequest) (*models.WindowListResponse, error) {
	s.logger.Info("Replace: replacing rules for offer=%d, count=%d", req.OfferID, len(req.Windows))

	if req.OfferID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}

	if _, err := s.getActiveOffer(ctx, req.OfferID); err != nil {
		return nil, err
	}

	windows := make([]*domain.AvailabilityWindow, 0, len(req.Windows))
	for i, in := range req.Windows {
		w, err := toDomainWindow(req.OfferID, in)
		if err != nil {
			s.logger.Warn("Replace: invalid rule #%d for offer=%d: %v", i, req.OfferID, err)
			return nil, err
		}
		windows = append(windows, w)
	}

	var saved []*domain.AvailabilityWindow
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.availabilityRepo.ReplaceForOffer(txCtx, req.OfferID, windows)
		return err
	})
	if err != nil {
		s.logger.Error("Replace: failed to replace rules for offer=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully replaced rules for offer=%d, saved=%d", req.OfferID, len(saved))
	return models.FromDomainWindowList(req.OfferID, saved), nil
}

// getActiveOffer получает оффер, трактуя неактивный как отсутствующий
func (s *Service) getActiveOffer(ctx context.Context, offerID int64) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			s.logger.Warn("getActiveOffer: offer id=%d not found", offerID)
			return nil, ErrOfferNotFound
		}
		s.logger.Error("getActiveOffer: repository error for offer id=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: failed to get offer: %v", ErrInternal, err)
	}
	if !offer.IsActive {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// toDomainWindow валидирует и конвертирует входное правило
func toDomainWindow(offerID int64, in models.WindowInput) (*domain.AvailabilityWindow, error) {
	if in.Weekday < domain.MinWeekday || in.Weekday > domain.MaxWeekday {
		return nil, ErrInvalidWeekday
	}

	start, err := types.NewTimeStringFromString(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime %q", ErrInvalidTimeFormat, in.StartTime)
	}
	end, err := types.NewTimeStringFromString(in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime %q", ErrInvalidTimeFormat, in.EndTime)
	}

	if !start.IsBefore(end) {
		return nil, ErrInvalidTimeRange
	}

	if in.SlotLengthMinutes <= 0 {
		return nil, ErrInvalidSlotLength
	}
	if in.MaxBookingsPerSlot <= 0 {
		return nil, ErrInvalidMaxBookings
	}

	return &domain.AvailabilityWindow{
		OfferID:            offerID,
		Weekday:            in.Weekday,
		StartTime:          start,
		EndTime:            end,
		SlotLengthMinutes:  in.SlotLengthMinutes,
		MaxBookingsPerSlot: in.MaxBookingsPerSlot,
	}, nil
}
