package get_place_bookings

import (
	"context"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/service/bookings/models"
)

type BookingService interface {
	GetPlaceBookings(ctx context.Context, req *models.GetPlaceBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
