package create_booking

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// Request входные данные создания бронирования
type Request struct {
	OfferID       int64
	Date          time.Time
	StartTime     types.TimeString
	Persons       int
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Source        string
}

// Response результат создания бронирования
type Response struct {
	ID            int64
	OfferID       int64
	PlaceID       int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Persons       int
	Status        string
	PaymentStatus string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Source        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
