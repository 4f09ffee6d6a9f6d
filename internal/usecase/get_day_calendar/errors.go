package get_day_calendar

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_day_calendar: invalid date range")

	// ErrRangeTooLarge возвращается, когда диапазон превышает допустимый размер
	ErrRangeTooLarge = errors.New("get_day_calendar: date range too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_calendar: internal error")
)
