package get_next_slot

import (
	"context"
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

// OfferRepository интерфейс репозитория офферов
type OfferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	GetActiveByPlace(ctx context.Context, placeID int64) ([]*domain.Offer, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByOffer(ctx context.Context, offerID int64) ([]*domain.AvailabilityWindow, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByOfferBetween(ctx context.Context, offerID int64, from, to time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
