package create_booking

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	createBooking "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/create_booking"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	OfferID       int64  `json:"offerId"`
	BookingDate   string `json:"bookingDate"` // "2026-09-15"
	StartTime     string `json:"startTime"`   // "10:00"
	Persons       int    `json:"persons"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	OfferID       int64  `json:"offerId"`
	PlaceID       int64  `json:"placeId"`
	BookingDate   string `json:"bookingDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Persons       int    `json:"persons"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Source        string `json:"source"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(source string) (*createBooking.Request, error) {
	bookingDate, err := types.ParseDate(r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OfferID:       r.OfferID,
		Date:          bookingDate,
		StartTime:     startTime,
		Persons:       r.Persons,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Source:        source,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		OfferID:       resp.OfferID,
		PlaceID:       resp.PlaceID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Persons:       resp.Persons,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Source:        resp.Source,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
