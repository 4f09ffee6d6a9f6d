package domain

// Default configuration values
const (
	DefaultMinStay       = 1
	DefaultDailyCapacity = 1
)

// Business validation constants
const (
	MinWeekday = 0 // Monday
	MaxWeekday = 6 // Sunday

	MinSlotLengthMinutes = 1
	MaxSlotLengthMinutes = 480 // 8 hours

	MinBookingsPerSlot = 1
	MaxBookingsPerSlot = 100

	// MaxRangeDays ограничивает размер внешне заданных диапазонов дат,
	// чтобы работа календарных запросов оставалась ограниченной
	MaxRangeDays = 90
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking sources
const (
	SourceWeb   = "web"
	SourceAdmin = "admin"
)

// ActiveStatuses список статусов, занимающих вместимость слота.
// Используется при подсчёте занятости
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, не занимающих вместимость
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
