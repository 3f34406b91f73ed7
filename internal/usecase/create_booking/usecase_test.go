package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	bookingRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/booking"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	"github.com/velmare/Nautic-BookingService/internal/integrations/notifier"
	"github.com/velmare/Nautic-BookingService/pkg/ptr"
)

var testDate = time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

type stubBookingRepo struct {
	existing  []*domain.Booking
	listErr   error
	createErr error
	created   *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b.ID = 101
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.created = b
	return b, nil
}

func (s *stubBookingRepo) GetByBoatWithFilter(_ context.Context, _ domain.BoatBookingsFilter) ([]*domain.Booking, error) {
	return s.existing, s.listErr
}

type stubUnavailRepo struct {
	windows []*domain.UnavailabilityWindow
	err     error
}

func (s *stubUnavailRepo) GetCovering(_ context.Context, _ int64, _ time.Time) ([]*domain.UnavailabilityWindow, error) {
	return s.windows, s.err
}

type stubFleetRepo struct {
	boat        *domain.Boat
	service     *domain.Service
	schedule    *domain.PriceSchedule
	scheduleErr error
}

func (s *stubFleetRepo) GetBoatByID(_ context.Context, _ int64) (*domain.Boat, error) {
	if s.boat == nil {
		return nil, fleetRepo.ErrBoatNotFound
	}
	return s.boat, nil
}

func (s *stubFleetRepo) GetServiceByID(_ context.Context, _ int64) (*domain.Service, error) {
	if s.service == nil {
		return nil, fleetRepo.ErrServiceNotFound
	}
	return s.service, nil
}

func (s *stubFleetRepo) GetPriceSchedule(_ context.Context, _, _ int64) (*domain.PriceSchedule, error) {
	if s.scheduleErr != nil {
		return nil, s.scheduleErr
	}
	return s.schedule, nil
}

type stubNotifier struct {
	events []*notifier.BookingEvent
}

func (s *stubNotifier) SendBookingEventWithGracefulDegradation(_ context.Context, e *notifier.BookingEvent) error {
	s.events = append(s.events, e)
	return nil
}

// stubTxManager выполняет fn напрямую, без транзакции
type stubTxManager struct {
	calls int
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func healthyFleet() *stubFleetRepo {
	return &stubFleetRepo{
		boat:    &domain.Boat{ID: 1, MaxPassengers: 8},
		service: &domain.Service{ID: 2, BoatID: 1},
		schedule: &domain.PriceSchedule{
			ID:        3,
			ServiceID: 2,
			Seasons: []domain.SeasonPrice{
				{Season: domain.SeasonPeak, FlatPrice: ptr.Ptr(500.0)},
			},
		},
	}
}

func validRequest() *Request {
	return &Request{
		BoatID:       1,
		ServiceID:    2,
		CustomerName: "Marco Rossi",
		Date:         testDate,
		TimeSlot:     domain.SlotFullDay,
		Passengers:   6,
	}
}

func TestExecute_CreatesBookingWithResolvedPrice(t *testing.T) {
	bookings := &stubBookingRepo{}
	notify := &stubNotifier{}
	tx := &stubTxManager{}
	uc := NewUseCase(bookings, &stubUnavailRepo{}, healthyFleet(), notify, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 500.0, resp.BasePrice)
	assert.Equal(t, 500.0, resp.FinalPrice)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, 1, tx.calls, "check and insert must share one transaction")

	require.Len(t, notify.events, 1)
	assert.Equal(t, notifier.EventBookingCreated, notify.events[0].Event)
}

func TestExecute_PriceOverrideWins(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, healthyFleet(), &stubNotifier{}, &stubTxManager{}, nopLogger{})

	req := validRequest()
	req.PriceOverride = ptr.Ptr(450.0)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 500.0, resp.BasePrice, "resolver suggestion is kept as base price")
	assert.Equal(t, 450.0, resp.FinalPrice)
}

func TestExecute_PriceNotConfigured(t *testing.T) {
	fleet := healthyFleet()
	fleet.schedule = nil
	fleet.scheduleErr = fleetRepo.ErrScheduleNotFound

	t.Run("fails without manual price", func(t *testing.T) {
		uc := NewUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, fleet, &stubNotifier{}, &stubTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPriceNotConfigured)
	})

	t.Run("manual price rescues missing configuration", func(t *testing.T) {
		uc := NewUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, fleet, &stubNotifier{}, &stubTxManager{}, nopLogger{})

		req := validRequest()
		req.PriceOverride = ptr.Ptr(300.0)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 300.0, resp.BasePrice)
		assert.Equal(t, 300.0, resp.FinalPrice)
	})
}

func TestExecute_ConflictFromExistingBooking(t *testing.T) {
	bookings := &stubBookingRepo{existing: []*domain.Booking{
		{ID: 9, BoatID: 1, BookingDate: testDate, TimeSlot: domain.SlotMorning, Status: domain.StatusConfirmed},
	}}
	notify := &stubNotifier{}
	uc := NewUseCase(bookings, &stubUnavailRepo{}, healthyFleet(), notify, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "boat already booked for half day", conflict.Reason)
	assert.Nil(t, bookings.created, "no insert after availability veto")
	assert.Empty(t, notify.events, "no notification for rejected booking")
}

func TestExecute_ConflictFromUnavailabilityWindow(t *testing.T) {
	unavail := &stubUnavailRepo{windows: []*domain.UnavailabilityWindow{
		{ID: 1, BoatID: 1, DateFrom: testDate.AddDate(0, 0, -2), DateTo: testDate.AddDate(0, 0, 2), Reason: ptr.Ptr("maintenance")},
	}}
	uc := NewUseCase(&stubBookingRepo{}, unavail, healthyFleet(), &stubNotifier{}, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "boat unavailable: maintenance", conflict.Reason)
}

func TestExecute_UniqueIndexViolationIsConflict(t *testing.T) {
	// Гонка, проскочившая мимо предварительной проверки, оседает на
	// частичном уникальном индексе и обязана выглядеть как конфликт
	bookings := &stubBookingRepo{createErr: bookingRepo.ErrSlotConflict}
	uc := NewUseCase(bookings, &stubUnavailRepo{}, healthyFleet(), &stubNotifier{}, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestExecute_StoreFailureIsInternal(t *testing.T) {
	bookings := &stubBookingRepo{listErr: errors.New("connection refused")}
	uc := NewUseCase(bookings, &stubUnavailRepo{}, healthyFleet(), &stubNotifier{}, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, healthyFleet(), &stubNotifier{}, &stubTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing customer name", func(r *Request) { r.CustomerName = "" }},
		{"zero passengers", func(r *Request) { r.Passengers = 0 }},
		{"negative deposit", func(r *Request) { r.Deposit = -1 }},
		{"negative price override", func(r *Request) { r.PriceOverride = ptr.Ptr(-5.0) }},
		{"unknown status", func(r *Request) { s := domain.BookingStatus("archived"); r.Status = &s }},
		{"empty slot", func(r *Request) { r.TimeSlot = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_CapacityCheck(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubUnavailRepo{}, healthyFleet(), &stubNotifier{}, &stubTxManager{}, nopLogger{})

	req := validRequest()
	req.Passengers = 9

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyPassengers)
}
