package domain

import (
	"time"

	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// AvailabilityWindow represents one recurring weekly booking rule of an offer:
// on the given weekday the offer can be booked between StartTime and EndTime,
// with candidate slots every SlotLengthMinutes and up to MaxBookingsPerSlot
// bookings per slot instant.
//
// Several windows may exist for the same offer and weekday; overlaps are
// permitted. Windows are replaced wholesale on save (delete-all-then-recreate),
// so storage order is creation order.
type AvailabilityWindow struct {
	ID                 int64
	OfferID            int64
	Weekday            int // 0..6, Monday=0
	StartTime          types.TimeString
	EndTime            types.TimeString
	SlotLengthMinutes  int
	MaxBookingsPerSlot int
	CreatedAt          time.Time
}

// IsUsable reports whether the window can generate slots at all.
// Malformed rows (inverted times, non-positive step or capacity) are treated
// as contributing zero slots rather than as errors.
func (w *AvailabilityWindow) IsUsable() bool {
	if w.SlotLengthMinutes <= 0 || w.MaxBookingsPerSlot < 1 {
		return false
	}
	if w.StartTime.Validate() != nil || w.EndTime.Validate() != nil {
		return false
	}
	return w.StartTime.IsBefore(w.EndTime)
}
