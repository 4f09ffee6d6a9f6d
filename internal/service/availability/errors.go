package availability

import "errors"

var (
	// ErrOfferNotFound возвращается, когда оффер не найден или неактивен
	ErrOfferNotFound = errors.New("offer not found")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0..6
	ErrInvalidWeekday = errors.New("weekday must be between 0 and 6")

	// ErrInvalidTimeFormat возвращается при времени вне формата HH:MM
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше конца
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrInvalidSlotLength возвращается при неположительной длине слота
	ErrInvalidSlotLength = errors.New("slot length must be positive")

	// ErrInvalidMaxBookings возвращается при неположительной вместимости слота
	ErrInvalidMaxBookings = errors.New("max bookings per slot must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
