package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	bookingRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/booking"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	"github.com/velmare/Nautic-BookingService/pkg/ptr"
)

var (
	dateAug = time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	dateJun = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

type stubBookingRepo struct {
	stored     *domain.Booking
	others     []*domain.Booking
	lastFilter domain.BoatBookingsFilter
	updateErr  error
	updated    *domain.Booking
}

func (s *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if s.stored == nil || s.stored.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *s.stored
	return &cp, nil
}

func (s *stubBookingRepo) GetByBoatWithFilter(_ context.Context, filter domain.BoatBookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	out := make([]*domain.Booking, 0, len(s.others))
	for _, b := range s.others {
		if filter.ExcludeBookingID != nil && b.ID == *filter.ExcludeBookingID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *stubBookingRepo) Update(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	b.UpdatedAt = time.Now()
	s.updated = b
	return b, nil
}

type stubUnavailRepo struct {
	windows []*domain.UnavailabilityWindow
}

func (s *stubUnavailRepo) GetCovering(_ context.Context, _ int64, _ time.Time) ([]*domain.UnavailabilityWindow, error) {
	return s.windows, nil
}

type stubFleetRepo struct {
	boat     *domain.Boat
	schedule *domain.PriceSchedule
}

func (s *stubFleetRepo) GetBoatByID(_ context.Context, _ int64) (*domain.Boat, error) {
	return s.boat, nil
}

func (s *stubFleetRepo) GetPriceSchedule(_ context.Context, _, _ int64) (*domain.PriceSchedule, error) {
	if s.schedule == nil {
		return nil, fleetRepo.ErrScheduleNotFound
	}
	return s.schedule, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func storedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           7,
		BoatID:       1,
		ServiceID:    2,
		CustomerName: "Laura Bianchi",
		BookingDate:  dateAug,
		TimeSlot:     domain.SlotFullDay,
		Passengers:   4,
		BasePrice:    500,
		FinalPrice:   500,
		Status:       domain.StatusConfirmed,
	}
}

func testFleet() *stubFleetRepo {
	return &stubFleetRepo{
		boat: &domain.Boat{ID: 1, MaxPassengers: 8},
		schedule: &domain.PriceSchedule{
			ID:        3,
			ServiceID: 2,
			Seasons: []domain.SeasonPrice{
				{Season: domain.SeasonPeak, FlatPrice: ptr.Ptr(500.0)},
				{Season: domain.SeasonMid, FlatPrice: ptr.Ptr(320.0)},
			},
		},
	}
}

func newUseCase(bookings *stubBookingRepo, unavail *stubUnavailRepo, fleet *stubFleetRepo) *UseCase {
	return NewUseCase(bookings, unavail, fleet, stubTxManager{}, nopLogger{})
}

func TestExecute_UpdatesContactFields(t *testing.T) {
	bookings := &stubBookingRepo{stored: storedBooking()}
	uc := newUseCase(bookings, &stubUnavailRepo{}, testFleet())

	resp, err := uc.Execute(context.Background(), &Request{
		ID:            7,
		CustomerName:  ptr.Ptr("Laura Verdi"),
		CustomerPhone: ptr.Ptr("+39 333 1234567"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Laura Verdi", resp.CustomerName)
	require.NotNil(t, resp.CustomerPhone)
	assert.Equal(t, "+39 333 1234567", *resp.CustomerPhone)
	assert.Equal(t, 500.0, resp.FinalPrice, "price untouched when schedule unchanged")
}

func TestExecute_DateMoveReprices(t *testing.T) {
	bookings := &stubBookingRepo{stored: storedBooking()}
	uc := newUseCase(bookings, &stubUnavailRepo{}, testFleet())

	resp, err := uc.Execute(context.Background(), &Request{ID: 7, Date: &dateJun})

	require.NoError(t, err)
	assert.Equal(t, dateJun, resp.BookingDate)
	assert.Equal(t, 320.0, resp.BasePrice, "June falls into the mid season bracket")
	assert.Equal(t, 320.0, resp.FinalPrice)
}

func TestExecute_DateMoveExcludesSelfFromCheck(t *testing.T) {
	stored := storedBooking()
	bookings := &stubBookingRepo{
		stored: stored,
		// единственное бронирование на новом слоте - само же редактируемое
		others: []*domain.Booking{stored},
	}
	uc := newUseCase(bookings, &stubUnavailRepo{}, testFleet())

	slot := domain.SlotMorning
	_, err := uc.Execute(context.Background(), &Request{ID: 7, TimeSlot: &slot})

	require.NoError(t, err)
	require.NotNil(t, bookings.lastFilter.ExcludeBookingID)
	assert.Equal(t, int64(7), *bookings.lastFilter.ExcludeBookingID)
}

func TestExecute_DateMoveConflicts(t *testing.T) {
	bookings := &stubBookingRepo{
		stored: storedBooking(),
		others: []*domain.Booking{
			{ID: 8, BoatID: 1, BookingDate: dateJun, TimeSlot: domain.SlotFullDay, Status: domain.StatusPending},
		},
	}
	uc := newUseCase(bookings, &stubUnavailRepo{}, testFleet())

	_, err := uc.Execute(context.Background(), &Request{ID: 7, Date: &dateJun})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "boat already booked full day for this date", conflict.Reason)
	assert.Nil(t, bookings.updated, "no write after availability veto")
}

func TestExecute_DateMoveIntoUnavailabilityWindow(t *testing.T) {
	bookings := &stubBookingRepo{stored: storedBooking()}
	unavail := &stubUnavailRepo{windows: []*domain.UnavailabilityWindow{
		{ID: 1, BoatID: 1, DateFrom: dateJun, DateTo: dateJun, Reason: ptr.Ptr("engine overhaul")},
	}}
	uc := newUseCase(bookings, unavail, testFleet())

	_, err := uc.Execute(context.Background(), &Request{ID: 7, Date: &dateJun})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "boat unavailable: engine overhaul", conflict.Reason)
}

func TestExecute_RaceOnUniqueIndex(t *testing.T) {
	bookings := &stubBookingRepo{stored: storedBooking(), updateErr: bookingRepo.ErrSlotConflict}
	uc := newUseCase(bookings, &stubUnavailRepo{}, testFleet())

	_, err := uc.Execute(context.Background(), &Request{ID: 7, Date: &dateJun})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestExecute_LockedStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			stored := storedBooking()
			stored.Status = status
			uc := newUseCase(&stubBookingRepo{stored: stored}, &stubUnavailRepo{}, testFleet())

			_, err := uc.Execute(context.Background(), &Request{ID: 7, CustomerName: ptr.Ptr("X")})
			assert.ErrorIs(t, err, ErrBookingLocked)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, testFleet())

	_, err := uc.Execute(context.Background(), &Request{ID: 99, CustomerName: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_PassengerChangeRepricesTier(t *testing.T) {
	fleet := testFleet()
	fleet.schedule.Seasons = []domain.SeasonPrice{
		{Season: domain.SeasonPeak, Tiers: []domain.PassengerTier{
			{MinPassengers: 1, MaxPassengers: 4, Price: 400},
			{MinPassengers: 5, MaxPassengers: 8, Price: 550},
		}},
	}
	bookings := &stubBookingRepo{stored: storedBooking()}
	uc := newUseCase(bookings, &stubUnavailRepo{}, fleet)

	resp, err := uc.Execute(context.Background(), &Request{ID: 7, Passengers: ptr.Ptr(6)})

	require.NoError(t, err)
	assert.Equal(t, 550.0, resp.BasePrice)
	assert.Equal(t, 550.0, resp.FinalPrice)
}

func TestExecute_CapacityCheck(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{stored: storedBooking()}, &stubUnavailRepo{}, testFleet())

	_, err := uc.Execute(context.Background(), &Request{ID: 7, Passengers: ptr.Ptr(12)})
	assert.ErrorIs(t, err, ErrTooManyPassengers)
}

func TestExecute_ManualPriceOnDateMove(t *testing.T) {
	bookings := &stubBookingRepo{stored: storedBooking()}
	uc := newUseCase(bookings, &stubUnavailRepo{}, testFleet())

	resp, err := uc.Execute(context.Background(), &Request{
		ID:         7,
		Date:       &dateJun,
		FinalPrice: ptr.Ptr(280.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 320.0, resp.BasePrice, "resolver suggestion tracks the new date")
	assert.Equal(t, 280.0, resp.FinalPrice)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{stored: storedBooking()}, &stubUnavailRepo{}, testFleet())

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero id", &Request{ID: 0}},
		{"empty name", &Request{ID: 7, CustomerName: ptr.Ptr("")}},
		{"zero passengers", &Request{ID: 7, Passengers: ptr.Ptr(0)}},
		{"negative price", &Request{ID: 7, FinalPrice: ptr.Ptr(-1.0)}},
		{"unknown status", &Request{ID: 7, Status: (*domain.BookingStatus)(ptr.Ptr("frozen"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
