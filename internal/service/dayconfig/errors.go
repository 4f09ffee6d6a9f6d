package dayconfig

import "errors"

var (
	// ErrInvalidBookingMode возвращается при режиме вне {daily, hourly}
	ErrInvalidBookingMode = errors.New("booking mode must be daily or hourly")

	// ErrInvalidCapacity возвращается, когда multi-booking включен
	// с вместимостью меньше 1
	ErrInvalidCapacity = errors.New("daily capacity must be at least 1 when multi-booking is enabled")

	// ErrInvalidStay возвращается при некорректных границах длительности проживания
	ErrInvalidStay = errors.New("invalid min/max stay bounds")

	// ErrInvalidDate возвращается при некорректной дате в списке блокировок
	// или сезонном периоде
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidSeasonalPeriod возвращается при сезонном периоде с началом позже конца
	ErrInvalidSeasonalPeriod = errors.New("seasonal period start must not be after end")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
