package get_day_summary

import "errors"

var (
	// ErrOfferNotFound возвращается, когда оффер не найден или неактивен
	ErrOfferNotFound = errors.New("get_day_summary: offer not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_day_summary: invalid date range")

	// ErrRangeTooLarge возвращается, когда диапазон превышает допустимый размер
	ErrRangeTooLarge = errors.New("get_day_summary: date range too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_summary: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_summary: internal error")
)
