package unavailability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	unavailRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/unavailability"
	"github.com/velmare/Nautic-BookingService/internal/service/unavailability/models"
	"github.com/velmare/Nautic-BookingService/pkg/ptr"
)

type stubRepo struct {
	windows map[int64]*domain.UnavailabilityWindow
	nextID  int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{windows: map[int64]*domain.UnavailabilityWindow{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, w *domain.UnavailabilityWindow) (*domain.UnavailabilityWindow, error) {
	w.ID = s.nextID
	w.CreatedAt = time.Now()
	s.nextID++
	s.windows[w.ID] = w
	return w, nil
}

func (s *stubRepo) GetByBoatID(_ context.Context, boatID int64) ([]*domain.UnavailabilityWindow, error) {
	var out []*domain.UnavailabilityWindow
	for _, w := range s.windows {
		if w.BoatID == boatID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.windows[id]; !ok {
		return unavailRepo.ErrWindowNotFound
	}
	delete(s.windows, id)
	return nil
}

type stubFleet struct {
	boats map[int64]*domain.Boat
}

func (s *stubFleet) GetBoatByID(_ context.Context, id int64) (*domain.Boat, error) {
	b, ok := s.boats[id]
	if !ok {
		return nil, fleetRepo.ErrBoatNotFound
	}
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *stubRepo) *Service {
	fleet := &stubFleet{boats: map[int64]*domain.Boat{1: {ID: 1, MaxPassengers: 8}}}
	return NewService(repo, fleet, nopLogger{})
}

func windowReq(boatID int64, from, to string, reason *string) *models.CreateWindowRequest {
	return &models.CreateWindowRequest{
		BoatID:   boatID,
		DateFrom: from,
		DateTo:   to,
		Reason:   reason,
	}
}

func TestCreate(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	resp, err := svc.Create(context.Background(), windowReq(1, "2025-07-10", "2025-07-14", ptr.Ptr("hull repair")))

	require.NoError(t, err)
	assert.Equal(t, "2025-07-10", resp.DateFrom)
	assert.Equal(t, "2025-07-14", resp.DateTo)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "hull repair", *resp.Reason)
	assert.Len(t, repo.windows, 1)
}

func TestCreate_SingleDayWindow(t *testing.T) {
	svc := newService(newStubRepo())

	resp, err := svc.Create(context.Background(), windowReq(1, "2025-07-10", "2025-07-10", nil))

	require.NoError(t, err)
	assert.Equal(t, resp.DateFrom, resp.DateTo)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(newStubRepo())

	tests := []struct {
		name string
		req  *models.CreateWindowRequest
	}{
		{"inverted range", windowReq(1, "2025-07-14", "2025-07-10", nil)},
		{"bad dateFrom", windowReq(1, "10-07-2025", "2025-07-14", nil)},
		{"bad dateTo", windowReq(1, "2025-07-10", "", nil)},
		{"zero boat", windowReq(0, "2025-07-10", "2025-07-14", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_BoatNotFound(t *testing.T) {
	svc := newService(newStubRepo())

	_, err := svc.Create(context.Background(), windowReq(42, "2025-07-10", "2025-07-14", nil))
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestListByBoat(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), windowReq(1, "2025-07-10", "2025-07-14", nil))
	require.NoError(t, err)

	resp, err := svc.ListByBoat(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.Windows, 1)

	empty, err := svc.ListByBoat(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Windows)
}

func TestDelete(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), windowReq(1, "2025-07-10", "2025-07-14", nil))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.windows)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrWindowNotFound)
}
