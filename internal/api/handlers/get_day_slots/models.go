package get_day_slots

import (
	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	getDaySlots "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_slots"
)

// SlotResponse один слот дня в HTTP ответе
type SlotResponse struct {
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Available    bool   `json:"available"`
	CapacityLeft int    `json:"capacityLeft"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	OfferID int64          `json:"offerId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:    s.StartTime.String(),
			EndTime:      s.EndTime.String(),
			Available:    s.Available,
			CapacityLeft: s.CapacityLeft,
		})
	}
	return &DaySlotsResponse{
		OfferID: resp.OfferID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
