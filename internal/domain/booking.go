package domain

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// BookingStatus represents the status of an offer booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentPending     PaymentStatus = "pending"
	PaymentPaid        PaymentStatus = "paid"
)

// Booking represents a slot booking of an offer.
// EndTime is computed once at creation (StartTime + offer duration) and is
// never recomputed afterwards, even if the offer's duration changes.
type Booking struct {
	ID          int64
	OfferID     int64
	PlaceID     int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Persons     int

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// Customer identity; bookings may be placed anonymously
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Source        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies slot capacity.
// Only pending and confirmed bookings count; cancelled ones never do.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can transition to cancelled.
// Confirmed and cancelled are terminal in this service.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// PlaceBookingsFilter фильтр для выборки бронирований всех офферов площадки
type PlaceBookingsFilter struct {
	PlaceID         int64
	Date            *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}
