package get_day_calendar

import (
	"context"
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

// DayConfigRepository интерфейс репозитория дневной модели доступности
type DayConfigRepository interface {
	GetByPlace(ctx context.Context, placeID int64) (*domain.DayAvailabilityConfig, error)
	GetActiveStaysOverlapping(ctx context.Context, placeID int64, from, to time.Time) ([]*domain.DayBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
