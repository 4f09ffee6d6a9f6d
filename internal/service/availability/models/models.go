package models

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
)

// WindowInput одно еженедельное правило доступности в запросе на замену
type WindowInput struct {
	Weekday            int    `json:"weekday"` // 0 = понедельник
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	SlotLengthMinutes  int    `json:"slotLengthMinutes"`
	MaxBookingsPerSlot int    `json:"maxBookingsPerSlot"`
}

// ReplaceRequest запрос на полную замену правил оффера
type ReplaceRequest struct {
	OfferID int64
	Windows []WindowInput
}

// WindowResponse сохранённое правило доступности
type WindowResponse struct {
	ID                 int64  `json:"id"`
	OfferID            int64  `json:"offerId"`
	Weekday            int    `json:"weekday"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	SlotLengthMinutes  int    `json:"slotLengthMinutes"`
	MaxBookingsPerSlot int    `json:"maxBookingsPerSlot"`

	CreatedAt time.Time `json:"createdAt"`
}

// WindowListResponse ответ со списком правил
type WindowListResponse struct {
	OfferID int64            `json:"offerId"`
	Windows []WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) WindowResponse {
	return WindowResponse{
		ID:                 w.ID,
		OfferID:            w.OfferID,
		Weekday:            w.Weekday,
		StartTime:          w.StartTime.String(),
		EndTime:            w.EndTime.String(),
		SlotLengthMinutes:  w.SlotLengthMinutes,
		MaxBookingsPerSlot: w.MaxBookingsPerSlot,
		CreatedAt:          w.CreatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(offerID int64, windows []*domain.AvailabilityWindow) *WindowListResponse {
	result := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		result = append(result, FromDomainWindow(w))
	}
	return &WindowListResponse{OfferID: offerID, Windows: result}
}
