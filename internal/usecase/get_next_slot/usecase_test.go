package get_next_slot

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
	offers []*domain.Offer
}

func (f *fakeOfferRepo) GetByID(_ context.Context, id int64) (*domain.Offer, error) {
	for _, o := range f.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, offerRepo.ErrOfferNotFound
}

func (f *fakeOfferRepo) GetActiveByPlace(_ context.Context, placeID int64) ([]*domain.Offer, error) {
	var result []*domain.Offer
	for _, o := range f.offers {
		if o.PlaceID == placeID && o.IsActive {
			result = append(result, o)
		}
	}
	return result, nil
}

type fakeAvailabilityRepo struct {
	windows map[int64][]*domain.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) GetByOffer(_ context.Context, offerID int64) ([]*domain.AvailabilityWindow, error) {
	return f.windows[offerID], nil
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

func offer(id int64, price float64) *domain.Offer {
	return &domain.Offer{
		ID:              id,
		PlaceID:         10,
		DurationMinutes: 60,
		BasePrice:       price,
		MinPersons:      1,
		MaxPersons:      6,
		IsActive:        true,
	}
}

func window(offerID int64, weekday int, start, end types.TimeString, maxBookings int) *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		OfferID:            offerID,
		Weekday:            weekday,
		StartTime:          start,
		EndTime:            end,
		SlotLengthMinutes:  60,
		MaxBookingsPerSlot: maxBookings,
	}
}

func booking(offerID int64, date time.Time, start types.TimeString) *domain.Booking {
	return &domain.Booking{
		OfferID:     offerID,
		BookingDate: date,
		StartTime:   start,
		Status:      domain.StatusConfirmed,
	}
}

func TestExecuteForOffer_FindsFirstFreeSlot(t *testing.T) {
	// Понедельник 10:00 занят, следующий свободный момент 11:00 того же дня
	uc := NewUseCase(
		&fakeOfferRepo{offers: []*domain.Offer{offer(1, 100)}},
		&fakeAvailabilityRepo{windows: map[int64][]*domain.AvailabilityWindow{
			1: {window(1, 0, "10:00", "12:00", 1)},
		}},
		&fakeBookingRepo{bookings: []*domain.Booking{booking(1, monday, "10:00")}},
		nopLogger{},
	)

	resp, err := uc.ExecuteForOffer(context.Background(), &OfferRequest{
		OfferID:   1,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, 13),
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.True(t, resp.Date.Equal(monday))
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
}

func TestExecuteForOffer_SkipsFullDay(t *testing.T) {
	// Единственный слот понедельника занят, ответ — понедельник следующей недели
	uc := NewUseCase(
		&fakeOfferRepo{offers: []*domain.Offer{offer(1, 100)}},
		&fakeAvailabilityRepo{windows: map[int64][]*domain.AvailabilityWindow{
			1: {window(1, 0, "10:00", "11:00", 1)},
		}},
		&fakeBookingRepo{bookings: []*domain.Booking{booking(1, monday, "10:00")}},
		nopLogger{},
	)

	resp, err := uc.ExecuteForOffer(context.Background(), &OfferRequest{
		OfferID:   1,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, 13),
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.True(t, resp.Date.Equal(monday.AddDate(0, 0, 7)))
}

func TestExecuteForOffer_NothingInRange(t *testing.T) {
	// Окна только по понедельникам, диапазон со вторника по пятницу
	uc := NewUseCase(
		&fakeOfferRepo{offers: []*domain.Offer{offer(1, 100)}},
		&fakeAvailabilityRepo{windows: map[int64][]*domain.AvailabilityWindow{
			1: {window(1, 0, "10:00", "12:00", 1)},
		}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.ExecuteForOffer(context.Background(), &OfferRequest{
		OfferID:   1,
		DateStart: monday.AddDate(0, 0, 1),
		DateEnd:   monday.AddDate(0, 0, 4),
	})
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestExecuteForOffer_RangeTooLarge(t *testing.T) {
	uc := NewUseCase(&fakeOfferRepo{}, &fakeAvailabilityRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.ExecuteForOffer(context.Background(), &OfferRequest{
		OfferID:   1,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, domain.MaxRangeDays+5),
	})
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestExecuteForOffer_InactiveOffer(t *testing.T) {
	inactive := offer(1, 100)
	inactive.IsActive = false
	uc := NewUseCase(&fakeOfferRepo{offers: []*domain.Offer{inactive}}, &fakeAvailabilityRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.ExecuteForOffer(context.Background(), &OfferRequest{
		OfferID:   1,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, 7),
	})
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestExecuteForPlace_EarlierDayWins(t *testing.T) {
	// Оффер 1 свободен только в среду, оффер 2 уже в понедельник:
	// побеждает более ранний день независимо от порядка офферов
	uc := NewUseCase(
		&fakeOfferRepo{offers: []*domain.Offer{offer(1, 50), offer(2, 200)}},
		&fakeAvailabilityRepo{windows: map[int64][]*domain.AvailabilityWindow{
			1: {window(1, 2, "09:00", "10:00", 1)}, // среда
			2: {window(2, 0, "15:00", "16:00", 1)}, // понедельник
		}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.ExecuteForPlace(context.Background(), &PlaceRequest{
		PlaceID:   10,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, 6),
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.True(t, resp.Date.Equal(monday))
	assert.Equal(t, int64(2), resp.OfferID)
	assert.Equal(t, float64(200), resp.PriceFrom)
}

func TestExecuteForPlace_SameDayEarlierTimeWins(t *testing.T) {
	uc := NewUseCase(
		&fakeOfferRepo{offers: []*domain.Offer{offer(1, 50), offer(2, 200)}},
		&fakeAvailabilityRepo{windows: map[int64][]*domain.AvailabilityWindow{
			1: {window(1, 0, "12:00", "13:00", 1)},
			2: {window(2, 0, "09:00", "10:00", 1)},
		}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.ExecuteForPlace(context.Background(), &PlaceRequest{
		PlaceID:   10,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, 6),
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, int64(2), resp.OfferID)
}

func TestExecuteForPlace_PriceFromAmongTiedOffers(t *testing.T) {
	// Оба оффера свободны в один и тот же момент: PriceFrom — минимальная
	// базовая цена среди них
	uc := NewUseCase(
		&fakeOfferRepo{offers: []*domain.Offer{offer(1, 300), offer(2, 120)}},
		&fakeAvailabilityRepo{windows: map[int64][]*domain.AvailabilityWindow{
			1: {window(1, 0, "10:00", "11:00", 1)},
			2: {window(2, 0, "10:00", "11:00", 1)},
		}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.ExecuteForPlace(context.Background(), &PlaceRequest{
		PlaceID:   10,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, 6),
	})
	require.NoError(t, err)

	require.True(t, resp.Found)
	assert.Equal(t, float64(120), resp.PriceFrom)
}

func TestExecuteForPlace_NoOffers(t *testing.T) {
	uc := NewUseCase(&fakeOfferRepo{}, &fakeAvailabilityRepo{}, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.ExecuteForPlace(context.Background(), &PlaceRequest{
		PlaceID:   10,
		DateStart: monday,
		DateEnd:   monday.AddDate(0, 0, 6),
	})
	require.NoError(t, err)
	assert.False(t, resp.Found)
}
