package get_day_config

import (
	"context"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig/models"
)

type DayConfigService interface {
	Get(ctx context.Context, placeID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
