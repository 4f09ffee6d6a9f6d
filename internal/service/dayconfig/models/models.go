package models

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

// SeasonalPriceInput сезонный период цены в запросе
type SeasonalPriceInput struct {
	StartDate string  `json:"startDate"` // YYYY-MM-DD
	EndDate   string  `json:"endDate"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

// UpdateRequest запрос на полную замену конфигурации площадки
type UpdateRequest struct {
	PlaceID            int64
	BookingMode        string               `json:"bookingMode"`
	BlockedDates       []string             `json:"blockedDates"` // YYYY-MM-DD
	SeasonalPrices     []SeasonalPriceInput `json:"seasonalPrices"`
	MinStay            int                  `json:"minStay"`
	MaxStay            int                  `json:"maxStay"`
	IsAvailable        bool                 `json:"isAvailable"`
	EnableMultiBooking bool                 `json:"enableMultiBooking"`
	DailyCapacity      int                  `json:"dailyCapacity"`
}

// ToggleBlockedDateRequest запрос на переключение одной даты блокировки
type ToggleBlockedDateRequest struct {
	PlaceID int64
	Date    string `json:"date"` // YYYY-MM-DD
}

// SeasonalPriceResponse сезонный период в ответе
type SeasonalPriceResponse struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

// ConfigResponse конфигурация дневной модели площадки
type ConfigResponse struct {
	PlaceID            int64                   `json:"placeId"`
	BookingMode        string                  `json:"bookingMode"`
	BlockedDates       []string                `json:"blockedDates"`
	SeasonalPrices     []SeasonalPriceResponse `json:"seasonalPrices"`
	MinStay            int                     `json:"minStay"`
	MaxStay            int                     `json:"maxStay"`
	IsAvailable        bool                    `json:"isAvailable"`
	EnableMultiBooking bool                    `json:"enableMultiBooking"`
	DailyCapacity      int                     `json:"dailyCapacity"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.DayAvailabilityConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	blocked := make([]string, 0, len(c.BlockedDates))
	for _, d := range c.BlockedDates {
		blocked = append(blocked, d.Format(domain.DateFormat))
	}

	seasonal := make([]SeasonalPriceResponse, 0, len(c.SeasonalPrices))
	for _, p := range c.SeasonalPrices {
		seasonal = append(seasonal, SeasonalPriceResponse{
			StartDate: p.StartDate.Format(domain.DateFormat),
			EndDate:   p.EndDate.Format(domain.DateFormat),
			Price:     p.Price,
			Name:      p.Name,
		})
	}

	return &ConfigResponse{
		PlaceID:            c.PlaceID,
		BookingMode:        string(c.BookingMode),
		BlockedDates:       blocked,
		SeasonalPrices:     seasonal,
		MinStay:            c.MinStay,
		MaxStay:            c.MaxStay,
		IsAvailable:        c.IsAvailable,
		EnableMultiBooking: c.EnableMultiBooking,
		DailyCapacity:      c.DailyCapacity,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
