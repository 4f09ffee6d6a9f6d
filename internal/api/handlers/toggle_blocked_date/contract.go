package toggle_blocked_date

import (
	"context"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig/models"
)

type DayConfigService interface {
	ToggleBlockedDate(ctx context.Context, req *models.ToggleBlockedDateRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
