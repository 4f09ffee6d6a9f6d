package get_day_slots

import (
	"context"
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

// OfferRepository интерфейс репозитория офферов
type OfferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByOfferAndWeekday(ctx context.Context, offerID int64, weekday int) ([]*domain.AvailabilityWindow, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByOfferAndDate(ctx context.Context, offerID int64, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
