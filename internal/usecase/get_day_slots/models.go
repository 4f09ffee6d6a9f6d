package get_day_slots

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// Request входные данные получения слотов на день
type Request struct {
	OfferID int64
	Date    time.Time
}

// SlotInfo один слот дня с оценкой доступности
type SlotInfo struct {
	StartTime    types.TimeString
	EndTime      types.TimeString
	Available    bool
	CapacityLeft int
}

// Response список слотов оффера на дату
type Response struct {
	OfferID int64
	Date    time.Time
	Slots   []SlotInfo
}
