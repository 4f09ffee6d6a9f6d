package get_day_summary

import (
	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	getDaySummary "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_summary"
)

// DayResponse сводка одного дня в HTTP ответе
type DayResponse struct {
	Date            string `json:"date"`
	IsAvailable     bool   `json:"isAvailable"`
	HasAvailability bool   `json:"hasAvailability"`
	TotalSlots      int    `json:"totalSlots"`
	BookedSlots     int    `json:"bookedSlots"`
}

// DaySummaryResponse HTTP response model
type DaySummaryResponse struct {
	OfferID int64         `json:"offerId"`
	Days    []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySummary.Response) *DaySummaryResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:            d.Date.Format(domain.DateFormat),
			IsAvailable:     d.IsAvailable,
			HasAvailability: d.HasAvailability,
			TotalSlots:      d.TotalSlots,
			BookedSlots:     d.BookedSlots,
		})
	}
	return &DaySummaryResponse{OfferID: resp.OfferID, Days: days}
}
