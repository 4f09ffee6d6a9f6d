package get_day_calendar

import (
	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	getDayCalendar "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_calendar"
)

// DayResponse один день календаря в HTTP ответе
type DayResponse struct {
	Date          string  `json:"date"`
	Available     bool    `json:"available"`
	Blocked       bool    `json:"blocked"`
	Price         float64 `json:"price"`
	BookedCount   int     `json:"bookedCount"`
	OccupancyRate int     `json:"occupancyRate"`
}

// DayCalendarResponse HTTP response model
type DayCalendarResponse struct {
	PlaceID int64         `json:"placeId"`
	Days    []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayCalendar.Response) *DayCalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:          d.Date.Format(domain.DateFormat),
			Available:     d.Available,
			Blocked:       d.Blocked,
			Price:         d.Price,
			BookedCount:   d.BookedCount,
			OccupancyRate: d.OccupancyRate,
		})
	}
	return &DayCalendarResponse{PlaceID: resp.PlaceID, Days: days}
}
