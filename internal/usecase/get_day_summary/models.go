package get_day_summary

import "time"

// Request входные данные сводки доступности по диапазону дат
type Request struct {
	OfferID   int64
	StartDate time.Time
	EndDate   time.Time
}

// DaySummary сводка одного дня.
// HasAvailability — дешевая оценка по наличию настроенных окон на день недели,
// без учета занятости. IsAvailable — точная оценка с вычетом бронирований
type DaySummary struct {
	Date            time.Time
	IsAvailable     bool
	HasAvailability bool
	TotalSlots      int
	BookedSlots     int
}

// Response сводка по каждому дню диапазона
type Response struct {
	OfferID int64
	Days    []DaySummary
}
