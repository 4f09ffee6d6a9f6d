package schedule

import (
	"sort"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

// GenerateSlots генерирует упорядоченный список слотов одного окна
// доступности для конкретной даты.
//
// Шагаем от начала окна с шагом SlotLengthMinutes, пока старт слота строго
// раньше конца окна. Кандидат [start, start+duration) попадает в результат
// только если start + duration <= конец окна: слот, вылезающий за закрытие,
// отбрасывается, даже если его старт достижим шагами. Поэтому последние
// слоты окна молча усекаются, когда длительность оффера не делит длину окна
// нацело — бронирований за время закрытия не бывает.
//
// Непригодное окно (инвертированные времена, неположительный шаг) не
// ошибка: оно даёт ноль слотов
func GenerateSlots(w *domain.AvailabilityWindow, durationMinutes int) []domain.Slot {
	slots := make([]domain.Slot, 0)

	if w == nil || !w.IsUsable() || durationMinutes <= 0 {
		return slots
	}

	start := w.StartTime.Minutes()
	end := w.EndTime.Minutes()

	for current := start; current < end; current += w.SlotLengthMinutes {
		slotEnd := current + durationMinutes
		if slotEnd > end {
			continue
		}
		slots = append(slots, domain.Slot{
			StartTime:   types.FromMinutes(current),
			EndTime:     types.FromMinutes(slotEnd),
			MaxBookings: w.MaxBookingsPerSlot,
		})
	}

	return slots
}

// MergeSlots объединяет слоты нескольких окон одного дня, убирая дубликаты
// по времени начала. Вместимость — свойство момента начала, а не окна: при
// коллизии стартов разных окон действует вместимость первого окна в порядке
// хранения (first-seen wins), и для проверки попадания, и для подсчёта.
// Результат отсортирован по времени начала
func MergeSlots(windows []*domain.AvailabilityWindow, durationMinutes int) []domain.Slot {
	merged := make([]domain.Slot, 0)
	seen := make(map[types.TimeString]struct{})

	for _, w := range windows {
		for _, slot := range GenerateSlots(w, durationMinutes) {
			if _, ok := seen[slot.StartTime]; ok {
				continue
			}
			seen[slot.StartTime] = struct{}{}
			merged = append(merged, slot)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].StartTime.Minutes() < merged[j].StartTime.Minutes()
	})

	return merged
}

// FitsWindow проверяет, что слот [start, start+duration) целиком лежит в окне
func FitsWindow(start types.TimeString, durationMinutes int, w *domain.AvailabilityWindow) bool {
	if w == nil || !w.IsUsable() || durationMinutes <= 0 {
		return false
	}
	s := start.Minutes()
	return s >= w.StartTime.Minutes() && s+durationMinutes <= w.EndTime.Minutes()
}

// FindWindow возвращает первое окно (в порядке хранения), в которое помещается
// запрошенный слот; nil, если такого окна нет. Вместимость найденного окна
// управляет проверкой занятости при создании бронирования
func FindWindow(windows []*domain.AvailabilityWindow, start types.TimeString, durationMinutes int) *domain.AvailabilityWindow {
	for _, w := range windows {
		if FitsWindow(start, durationMinutes, w) {
			return w
		}
	}
	return nil
}
