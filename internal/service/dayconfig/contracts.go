package dayconfig

import (
	"context"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

// DayConfigRepository интерфейс репозитория дневной модели доступности
type DayConfigRepository interface {
	GetByPlace(ctx context.Context, placeID int64) (*domain.DayAvailabilityConfig, error)
	Upsert(ctx context.Context, cfg *domain.DayAvailabilityConfig) (*domain.DayAvailabilityConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
