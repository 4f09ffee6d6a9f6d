package domain

import "time"

// Offer represents a bookable timed activity belonging to a place.
// Duration is fixed per offer and defines the length of every generated slot.
type Offer struct {
	ID              int64
	PlaceID         int64
	Title           string
	DurationMinutes int
	Currency        string
	BasePrice       float64
	MinPersons      int
	MaxPersons      int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AcceptsPersons returns true if the requested group size fits the offer bounds
func (o *Offer) AcceptsPersons(persons int) bool {
	if persons < o.MinPersons {
		return false
	}
	if o.MaxPersons > 0 && persons > o.MaxPersons {
		return false
	}
	return true
}
