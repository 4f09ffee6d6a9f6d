package get_day_summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damianGG/EnjoyHubAI-sub001/internal/domain"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
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

func (f *fakeAvailabilityRepo) GetByOffer(_ context.Context, _ int64) ([]*domain.AvailabilityWindow, error) {
	return f.windows, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByOfferBetween(_ context.Context, offerID int64, from, to time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.OfferID == offerID && !b.BookingDate.Before(from) && !b.BookingDate.After(to) && b.IsActive() {
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

func TestExecute_SummaryPerDay(t *testing.T) {
	// Окно только по понедельникам: один слот 10:00-11:00, вместимость 1.
	// Понедельник занят бронированием, остальные дни недели без окон
	windows := []*domain.AvailabilityWindow{{
		OfferID:            1,
		Weekday:            0,
		StartTime:          "10:00",
		EndTime:            "11:00",
		SlotLengthMinutes:  60,
		MaxBookingsPerSlot: 1,
	}}
	bookings := []*domain.Booking{{
		OfferID:     1,
		BookingDate: monday,
		StartTime:   "10:00",
		Status:      domain.StatusConfirmed,
	}}

	uc := newTestUseCase(windows, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		OfferID:   1,
		StartDate: monday,
		EndDate:   monday.AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 8)

	// Первый понедельник: окна настроены, но единственный слот занят
	first := resp.Days[0]
	assert.True(t, first.HasAvailability)
	assert.False(t, first.IsAvailable)
	assert.Equal(t, 1, first.TotalSlots)
	assert.Equal(t, 1, first.BookedSlots)

	// Вторник: окон нет
	tuesday := resp.Days[1]
	assert.False(t, tuesday.HasAvailability)
	assert.False(t, tuesday.IsAvailable)
	assert.Equal(t, 0, tuesday.TotalSlots)

	// Понедельник следующей недели: свободен
	next := resp.Days[7]
	assert.True(t, next.HasAvailability)
	assert.True(t, next.IsAvailable)
	assert.Equal(t, 0, next.BookedSlots)
}

func TestExecute_UnusableWindowGivesNoAvailability(t *testing.T) {
	// Окно с инвертированными границами не дает ни одного слота
	windows := []*domain.AvailabilityWindow{{
		OfferID:            1,
		Weekday:            0,
		StartTime:          "14:00",
		EndTime:            "10:00",
		SlotLengthMinutes:  60,
		MaxBookingsPerSlot: 1,
	}}

	uc := newTestUseCase(windows, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OfferID:   1,
		StartDate: monday,
		EndDate:   monday,
	})
	require.NoError(t, err)

	day := resp.Days[0]
	assert.False(t, day.HasAvailability)
	assert.False(t, day.IsAvailable)
	assert.Equal(t, 0, day.TotalSlots)
}

func TestExecute_RangeTooLarge(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		OfferID:   1,
		StartDate: monday,
		EndDate:   monday.AddDate(0, 0, domain.MaxRangeDays+1),
	})
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		OfferID:   1,
		StartDate: monday,
		EndDate:   monday.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_MaxRangeBoundary(t *testing.T) {
	// Ровно MaxRangeDays дней — допустимо
	uc := newTestUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OfferID:   1,
		StartDate: monday,
		EndDate:   monday.AddDate(0, 0, domain.MaxRangeDays-1),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Days, domain.MaxRangeDays)
}
