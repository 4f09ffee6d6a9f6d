package domain

import (
	"math"
	"time"
)

// BookingMode determines which availability model a place uses
type BookingMode string

const (
	ModeDaily  BookingMode = "daily"  // whole-day stays, check-in/check-out
	ModeHourly BookingMode = "hourly" // slot-based offers
)

// SeasonalPrice is a priced date period of the day-granularity model.
// Periods are not required to be non-overlapping; the first match in stored
// order wins.
type SeasonalPrice struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     float64   `json:"price"`
	Name      string    `json:"name"`
}

// Covers returns true if the date falls inside the period (inclusive bounds)
func (p *SeasonalPrice) Covers(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

// DayAvailabilityConfig is the per-place configuration of the parallel
// day-granularity availability model
type DayAvailabilityConfig struct {
	PlaceID            int64
	BookingMode        BookingMode
	BlockedDates       []time.Time
	SeasonalPrices     []SeasonalPrice
	MinStay            int
	MaxStay            int // 0 = unlimited
	IsAvailable        bool
	EnableMultiBooking bool
	DailyCapacity      int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultDayAvailabilityConfig returns the configuration assumed for a place
// without a stored row
func DefaultDayAvailabilityConfig(placeID int64) *DayAvailabilityConfig {
	return &DayAvailabilityConfig{
		PlaceID:     placeID,
		BookingMode: ModeDaily,
		MinStay:     DefaultMinStay,
		IsAvailable: true,
	}
}

// IsBlocked returns true if the date is in the blocked list
func (c *DayAvailabilityConfig) IsBlocked(date time.Time) bool {
	for _, d := range c.BlockedDates {
		if d.Year() == date.Year() && d.YearDay() == date.YearDay() {
			return true
		}
	}
	return false
}

// PriceFor returns the price for a date: the first matching seasonal period
// in stored order, otherwise the base price
func (c *DayAvailabilityConfig) PriceFor(date time.Time, basePrice float64) float64 {
	for _, p := range c.SeasonalPrices {
		if p.Covers(date) {
			return p.Price
		}
	}
	return basePrice
}

// MultiBookingEnabled returns true if the place accepts several stays per day
func (c *DayAvailabilityConfig) MultiBookingEnabled() bool {
	return c.EnableMultiBooking && c.DailyCapacity > 1
}

// DayBooking is a day-based stay occupying [CheckIn, CheckOut):
// the check-out day itself is free for the next guest
type DayBooking struct {
	ID            int64
	PlaceID       int64
	CheckIn       time.Time
	CheckOut      time.Time
	Status        BookingStatus
	CustomerName  string
	CustomerEmail string
	CreatedAt     time.Time
}

// IsActive returns true if the stay occupies capacity
func (b *DayBooking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Covers returns true if the stay occupies the given date
func (b *DayBooking) Covers(date time.Time) bool {
	return !date.Before(b.CheckIn) && date.Before(b.CheckOut)
}

// OccupancyRate возвращает процент занятости дня при multi-booking режиме
func OccupancyRate(booked, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(booked) / float64(capacity) * 100))
}
