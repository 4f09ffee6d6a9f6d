package notifier

// Event типы событий бронирования, отправляемые в сервис уведомлений
type Event string

const (
	EventBookingCreated   Event = "booking.created"
	EventBookingConfirmed Event = "booking.confirmed"
	EventBookingCancelled Event = "booking.cancelled"
)

// BookingNotification полезная нагрузка уведомления о событии бронирования
type BookingNotification struct {
	Event         Event  `json:"event"`
	BookingID     int64  `json:"booking_id"`
	OfferID       int64  `json:"offer_id"`
	PlaceID       int64  `json:"place_id"`
	BookingDate   string `json:"booking_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
