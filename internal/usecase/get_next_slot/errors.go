package get_next_slot

import "errors"

var (
	// ErrOfferNotFound возвращается, когда оффер не найден или неактивен
	ErrOfferNotFound = errors.New("get_next_slot: offer not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_next_slot: invalid date range")

	// ErrRangeTooLarge возвращается, когда диапазон превышает допустимый размер
	ErrRangeTooLarge = errors.New("get_next_slot: date range too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_next_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_next_slot: internal error")
)
