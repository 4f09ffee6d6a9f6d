package get_day_calendar

import "time"

// Request входные данные дневного календаря площадки.
// BasePrice — цена по умолчанию, применяется к дням вне сезонных периодов
type Request struct {
	PlaceID   int64
	StartDate time.Time
	EndDate   time.Time
	BasePrice float64
}

// CalendarDay один день календаря.
// OccupancyRate заполняется только при включенном multi-booking
type CalendarDay struct {
	Date          time.Time
	Available     bool
	Blocked       bool
	Price         float64
	BookedCount   int
	OccupancyRate int
}

// Response календарь доступности по дням
type Response struct {
	PlaceID int64
	Days    []CalendarDay
}
