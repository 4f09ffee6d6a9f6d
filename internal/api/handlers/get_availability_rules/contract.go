package get_availability_rules

import (
	"context"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/availability/models"
)

type AvailabilityService interface {
	GetByOffer(ctx context.Context, offerID int64) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
