package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmare/Nautic-BookingService/internal/availability"
	"github.com/velmare/Nautic-BookingService/internal/domain"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	"github.com/velmare/Nautic-BookingService/pkg/ptr"
)

var testDate = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
	gotFilter domain.BoatBookingsFilter
}

func (s *stubBookingRepo) GetByBoatWithFilter(_ context.Context, filter domain.BoatBookingsFilter) ([]*domain.Booking, error) {
	s.gotFilter = filter
	return s.bookings, s.err
}

type stubUnavailRepo struct {
	windows []*domain.UnavailabilityWindow
	err     error
}

func (s *stubUnavailRepo) GetCovering(_ context.Context, _ int64, _ time.Time) ([]*domain.UnavailabilityWindow, error) {
	return s.windows, s.err
}

type stubFleetRepo struct {
	boat *domain.Boat
	err  error
}

func (s *stubFleetRepo) GetBoatByID(_ context.Context, _ int64) (*domain.Boat, error) {
	return s.boat, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(bookings *stubBookingRepo, unavail *stubUnavailRepo, fleet *stubFleetRepo) *UseCase {
	return NewUseCase(bookings, unavail, fleet, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		BoatID:        1,
		Date:          testDate,
		RequestedSlot: domain.SlotAfternoon,
	}
}

func TestExecute_Available(t *testing.T) {
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BoatID: 1, BookingDate: testDate, TimeSlot: domain.SlotMorning, Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(bookings, &stubUnavailRepo{}, &stubFleetRepo{boat: &domain.Boat{ID: 1}})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)
	assert.True(t, bookings.gotFilter.IncludeCancelled)
}

func TestExecute_ConflictReasonPropagated(t *testing.T) {
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BoatID: 1, BookingDate: testDate, TimeSlot: domain.SlotFullDay, Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(bookings, &stubUnavailRepo{}, &stubFleetRepo{boat: &domain.Boat{ID: 1}})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, availability.ReasonFullDayBooked, resp.Reason)
}

func TestExecute_FailClosedOnStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name    string
		bookings *stubBookingRepo
		unavail  *stubUnavailRepo
		fleet    *stubFleetRepo
	}{
		{
			name:     "booking store failure",
			bookings: &stubBookingRepo{err: storeErr},
			unavail:  &stubUnavailRepo{},
			fleet:    &stubFleetRepo{boat: &domain.Boat{ID: 1}},
		},
		{
			name:     "unavailability store failure",
			bookings: &stubBookingRepo{},
			unavail:  &stubUnavailRepo{err: storeErr},
			fleet:    &stubFleetRepo{boat: &domain.Boat{ID: 1}},
		},
		{
			name:     "fleet store failure",
			bookings: &stubBookingRepo{},
			unavail:  &stubUnavailRepo{},
			fleet:    &stubFleetRepo{err: storeErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.bookings, tt.unavail, tt.fleet)

			resp, err := uc.Execute(context.Background(), validRequest())

			require.NoError(t, err)
			assert.False(t, resp.Available)
			assert.Equal(t, ReasonCheckFailed, resp.Reason)
		})
	}
}

func TestExecute_BoatNotFound(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, &stubFleetRepo{err: fleetRepo.ErrBoatNotFound})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestExecute_SelfExclusionOnEdit(t *testing.T) {
	// Scenario: re-checking booking 42 (full_day) for its own slot and date
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 42, BoatID: 1, BookingDate: testDate, TimeSlot: domain.SlotFullDay, Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(bookings, &stubUnavailRepo{}, &stubFleetRepo{boat: &domain.Boat{ID: 1}})

	req := validRequest()
	req.RequestedSlot = domain.SlotFullDay
	req.ExcludeBookingID = ptr.Ptr(int64(42))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, &stubFleetRepo{boat: &domain.Boat{ID: 1}})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero boat id", &Request{Date: testDate, RequestedSlot: domain.SlotMorning}},
		{"zero date", &Request{BoatID: 1, RequestedSlot: domain.SlotMorning}},
		{"empty slot", &Request{BoatID: 1, Date: testDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
