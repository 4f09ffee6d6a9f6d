package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/types"
)

type fakeOfferRepo struct {
	offer *domain.Offer
}

func (f *fakeOfferRepo) GetByID(_ context.Context, id int64) (*domain.Offer, error) {
	if f.offer == nil || f.offer.ID != id {
		return nil, offerRepo.ErrOfferNotFound
	}
	return f.offer, nil
}

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) GetByOfferAndWeekday(_ context.Context, _ int64, weekday int) ([]*domain.AvailabilityWindow, error) {
	var result []*domain.AvailabilityWindow
	for _, w := range f.windows {
		if w.Weekday == weekday {
			result = append(result, w)
		}
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByOfferAndDate(_ context.Context, offerID int64, date time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.OfferID == offerID && b.BookingDate.Equal(date) && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func newTestUseCase(windows []*domain.AvailabilityWindow, bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeOfferRepo{offer: &domain.Offer{ID: 1, DurationMinutes: 60, IsActive: true}},
		&fakeAvailabilityRepo{windows: windows},
		&fakeBookingRepo{bookings: bookings},
		nopLogger{},
	)
}

func mondayWindow(maxBookings int) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		OfferID:            1,
		Weekday:            0,
		StartTime:          "10:00",
		EndTime:            "13:00",
		SlotLengthMinutes:  60,
		MaxBookingsPerSlot: maxBookings,
	}
}

func TestExecute_EvaluatesSlots(t *testing.T) {
	// Окно 10:00-13:00, шаг 60, длительность 60: слоты 10:00, 11:00, 12:00.
	// Бронирование на 11:00 при вместимости 1 закрывает средний слот
	uc := newTestUseCase(
		[]*domain.AvailabilityWindow{mondayWindow(1)},
		[]*domain.Booking{{OfferID: 1, BookingDate: monday, StartTime: "11:00", Status: domain.StatusPending}},
	)

	resp, err := uc.Execute(context.Background(), &Request{OfferID: 1, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].EndTime)
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, 1, resp.Slots[0].CapacityLeft)

	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, 0, resp.Slots[1].CapacityLeft)

	assert.True(t, resp.Slots[2].Available)
}

func TestExecute_ReadOnlyAndRepeatable(t *testing.T) {
	// Чтение не меняет состояние: два вызова подряд дают одинаковый результат
	uc := newTestUseCase(
		[]*domain.AvailabilityWindow{mondayWindow(2)},
		[]*domain.Booking{{OfferID: 1, BookingDate: monday, StartTime: "10:00", Status: domain.StatusConfirmed}},
	)

	first, err := uc.Execute(context.Background(), &Request{OfferID: 1, Date: monday})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{OfferID: 1, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_NoWindowsForWeekday(t *testing.T) {
	uc := newTestUseCase([]*domain.AvailabilityWindow{mondayWindow(1)}, nil)

	resp, err := uc.Execute(context.Background(), &Request{OfferID: 1, Date: monday.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_CancelledBookingIgnored(t *testing.T) {
	uc := newTestUseCase(
		[]*domain.AvailabilityWindow{mondayWindow(1)},
		[]*domain.Booking{{OfferID: 1, BookingDate: monday, StartTime: "10:00", Status: domain.StatusCancelled}},
	)

	resp, err := uc.Execute(context.Background(), &Request{OfferID: 1, Date: monday})
	require.NoError(t, err)
	assert.True(t, resp.Slots[0].Available)
}

func TestExecute_InactiveOffer(t *testing.T) {
	uc := NewUseCase(
		&fakeOfferRepo{offer: &domain.Offer{ID: 1, DurationMinutes: 60, IsActive: false}},
		&fakeAvailabilityRepo{},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{OfferID: 1, Date: monday})
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{OfferID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{OfferID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
