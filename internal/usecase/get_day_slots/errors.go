package get_day_slots

import "errors"

var (
	// ErrOfferNotFound возвращается, когда оффер не найден или неактивен
	ErrOfferNotFound = errors.New("get_day_slots: offer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)
