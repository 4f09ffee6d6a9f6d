package domain

import "github.com/damianGG/EnjoyHubAI-sub001/pkg/types"

// Slot represents one concrete bookable time interval generated from an
// availability window for a single date
type Slot struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	MaxBookings int // capacity of the slot instant
}

// AvailableSlot is a slot evaluated against existing bookings
type AvailableSlot struct {
	StartTime    types.TimeString
	EndTime      types.TimeString
	CapacityLeft int // free spots, floored at 0 for display
	MaxBookings  int
}

// IsAvailable returns true if the slot has at least one free spot
func (s *AvailableSlot) IsAvailable() bool {
	return s.CapacityLeft > 0
}

// IsFull returns true if the slot has no free spots
func (s *AvailableSlot) IsFull() bool {
	return s.CapacityLeft <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.MaxBookings == 0 {
		return 0
	}
	occupied := s.MaxBookings - s.CapacityLeft
	return float64(occupied) / float64(s.MaxBookings) * 100
}
