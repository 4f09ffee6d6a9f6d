package create_booking

import "errors"

var (
	// ErrOfferNotFound возвращается, когда оффер не найден или неактивен
	ErrOfferNotFound = errors.New("create_booking: offer not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidPersons возвращается, когда размер группы не подходит офферу
	ErrInvalidPersons = errors.New("create_booking: persons count not accepted by offer")

	// ErrSlotNotAvailable возвращается, когда запрошенное время не попадает
	// ни в одно окно доступности
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotFullyBooked возвращается, когда вместимость слота исчерпана
	ErrSlotFullyBooked = errors.New("create_booking: slot is fully booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
