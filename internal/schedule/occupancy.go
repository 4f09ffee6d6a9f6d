package schedule

import (
	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// CountOccupancy считает занятость слотов: время начала -> количество
// активных бронирований ровно с этим стартом. Ключ — момент начала, а не
// окно: слоты пересекающихся окон с одинаковым стартом разделяют один счётчик
func CountOccupancy(bookings []*domain.Booking) map[types.TimeString]int {
	occupancy := make(map[types.TimeString]int)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		occupancy[b.StartTime]++
	}

	return occupancy
}

// EvaluateDay строит полный список слотов одного дня с учётом занятости:
// объединяет слоты всех окон и вычитает количество активных бронирований
// из вместимости каждого. CapacityLeft прижат к нулю для отображения
func EvaluateDay(windows []*domain.AvailabilityWindow, durationMinutes int, bookings []*domain.Booking) []domain.AvailableSlot {
	slots := MergeSlots(windows, durationMinutes)
	occupancy := CountOccupancy(bookings)

	result := make([]domain.AvailableSlot, len(slots))
	for i, slot := range slots {
		left := slot.MaxBookings - occupancy[slot.StartTime]
		if left < 0 {
			left = 0
		}
		result[i] = domain.AvailableSlot{
			StartTime:    slot.StartTime,
			EndTime:      slot.EndTime,
			CapacityLeft: left,
			MaxBookings:  slot.MaxBookings,
		}
	}

	return result
}

// FirstAvailable возвращает первый свободный слот дня или nil
func FirstAvailable(slots []domain.AvailableSlot) *domain.AvailableSlot {
	for i := range slots {
		if slots[i].IsAvailable() {
			return &slots[i]
		}
	}
	return nil
}
