package update_day_config

import (
	"context"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig/models"
)

type DayConfigService interface {
	Update(ctx context.Context, req *models.UpdateRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
