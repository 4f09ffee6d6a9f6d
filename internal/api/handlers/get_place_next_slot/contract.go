package get_place_next_slot

import (
	"context"

	getNextSlot "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_next_slot"
)

type GetNextSlotUseCase interface {
	ExecuteForPlace(ctx context.Context, req *getNextSlot.PlaceRequest) (*getNextSlot.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
