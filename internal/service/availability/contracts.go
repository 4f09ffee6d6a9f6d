package availability

import (
	"context"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

// OfferRepository интерфейс репозитория офферов
type OfferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByOffer(ctx context.Context, offerID int64) ([]*domain.AvailabilityWindow, error)
	ReplaceForOffer(ctx context.Context, offerID int64, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
