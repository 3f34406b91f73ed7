package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	"github.com/velmare/Nautic-BookingService/pkg/ptr"
)

var testDate = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

func booking(id int64, slot domain.TimeSlot, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BoatID:      1,
		BookingDate: testDate,
		TimeSlot:    slot,
		Status:      status,
	}
}

func window(from, to time.Time, reason *string) *domain.UnavailabilityWindow {
	return &domain.UnavailabilityWindow{
		ID:       1,
		BoatID:   1,
		DateFrom: from,
		DateTo:   to,
		Reason:   reason,
	}
}

func TestCheck_BookingConflicts(t *testing.T) {
	tests := []struct {
		name      string
		requested domain.TimeSlot
		bookings  []*domain.Booking
		available bool
		reason    string
	}{
		{
			name:      "empty booking set is available",
			requested: domain.SlotFullDay,
			bookings:  nil,
			available: true,
		},
		{
			name:      "full day booking blocks afternoon request",
			requested: domain.SlotAfternoon,
			bookings:  []*domain.Booking{booking(1, domain.SlotFullDay, domain.StatusConfirmed)},
			available: false,
			reason:    ReasonFullDayBooked,
		},
		{
			name:      "full day booking blocks morning request",
			requested: domain.SlotMorning,
			bookings:  []*domain.Booking{booking(1, domain.SlotFullDay, domain.StatusConfirmed)},
			available: false,
			reason:    ReasonFullDayBooked,
		},
		{
			name:      "full day booking blocks full day request",
			requested: domain.SlotFullDay,
			bookings:  []*domain.Booking{booking(1, domain.SlotFullDay, domain.StatusPending)},
			available: false,
			reason:    ReasonFullDayBooked,
		},
		{
			name:      "full day booking blocks custom slot request",
			requested: domain.TimeSlot("sunset cruise"),
			bookings:  []*domain.Booking{booking(1, domain.SlotFullDay, domain.StatusConfirmed)},
			available: false,
			reason:    ReasonFullDayBooked,
		},
		{
			name:      "morning booking blocks full day request",
			requested: domain.SlotFullDay,
			bookings:  []*domain.Booking{booking(1, domain.SlotMorning, domain.StatusConfirmed)},
			available: false,
			reason:    ReasonHalfDayBooked,
		},
		{
			name:      "afternoon booking blocks full day request",
			requested: domain.SlotFullDay,
			bookings:  []*domain.Booking{booking(1, domain.SlotAfternoon, domain.StatusConfirmed)},
			available: false,
			reason:    ReasonHalfDayBooked,
		},
		{
			name:      "morning booking blocks second morning request",
			requested: domain.SlotMorning,
			bookings:  []*domain.Booking{booking(1, domain.SlotMorning, domain.StatusConfirmed)},
			available: false,
			reason:    ReasonMorningBooked,
		},
		{
			name:      "afternoon booking blocks second afternoon request",
			requested: domain.SlotAfternoon,
			bookings:  []*domain.Booking{booking(1, domain.SlotAfternoon, domain.StatusConfirmed)},
			available: false,
			reason:    ReasonAfternoonBooked,
		},
		{
			name:      "morning booking does not block afternoon request",
			requested: domain.SlotAfternoon,
			bookings:  []*domain.Booking{booking(1, domain.SlotMorning, domain.StatusConfirmed)},
			available: true,
		},
		{
			name:      "afternoon booking does not block morning request",
			requested: domain.SlotMorning,
			bookings:  []*domain.Booking{booking(1, domain.SlotAfternoon, domain.StatusConfirmed)},
			available: true,
		},
		{
			name:      "custom slot request passes over half day bookings",
			requested: domain.TimeSlot("sunset cruise"),
			bookings: []*domain.Booking{
				booking(1, domain.SlotMorning, domain.StatusConfirmed),
				booking(2, domain.SlotAfternoon, domain.StatusConfirmed),
			},
			available: true,
		},
		{
			name:      "custom slot booking does not block anything",
			requested: domain.SlotFullDay,
			bookings:  []*domain.Booking{booking(1, domain.TimeSlot("sunset cruise"), domain.StatusConfirmed)},
			available: true,
		},
		{
			name:      "cancelled full day booking does not block",
			requested: domain.SlotFullDay,
			bookings:  []*domain.Booking{booking(1, domain.SlotFullDay, domain.StatusCancelled)},
			available: true,
		},
		{
			name:      "completed booking still blocks",
			requested: domain.SlotFullDay,
			bookings:  []*domain.Booking{booking(1, domain.SlotFullDay, domain.StatusCompleted)},
			available: false,
			reason:    ReasonFullDayBooked,
		},
		{
			name:      "full day reason dominates over half day conflicts",
			requested: domain.SlotFullDay,
			bookings: []*domain.Booking{
				booking(1, domain.SlotMorning, domain.StatusConfirmed),
				booking(2, domain.SlotFullDay, domain.StatusConfirmed),
			},
			available: false,
			reason:    ReasonFullDayBooked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Check(CheckInput{
				Date:          testDate,
				RequestedSlot: tt.requested,
				Bookings:      tt.bookings,
			})

			assert.Equal(t, tt.available, result.Available)
			if tt.available {
				assert.Empty(t, result.Reason)
			} else {
				assert.Equal(t, tt.reason, result.Reason)
			}
		})
	}
}

func TestCheck_UnavailabilityWindows(t *testing.T) {
	from := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)

	t.Run("window blocks every slot even with zero bookings", func(t *testing.T) {
		for _, slot := range []domain.TimeSlot{domain.SlotMorning, domain.SlotAfternoon, domain.SlotFullDay, "sunset cruise"} {
			result := Check(CheckInput{
				Date:          testDate,
				RequestedSlot: slot,
				Windows:       []*domain.UnavailabilityWindow{window(from, to, ptr.Ptr("maintenance"))},
			})

			require.False(t, result.Available, "slot %s", slot)
			assert.Equal(t, "boat unavailable: maintenance", result.Reason)
		}
	})

	t.Run("window reason defaults to maintenance", func(t *testing.T) {
		result := Check(CheckInput{
			Date:          testDate,
			RequestedSlot: domain.SlotMorning,
			Windows:       []*domain.UnavailabilityWindow{window(from, to, nil)},
		})

		require.False(t, result.Available)
		assert.Equal(t, "boat unavailable: maintenance", result.Reason)
	})

	t.Run("first matching window reason wins", func(t *testing.T) {
		result := Check(CheckInput{
			Date:          testDate,
			RequestedSlot: domain.SlotMorning,
			Windows: []*domain.UnavailabilityWindow{
				window(from, to, ptr.Ptr("cleaning")),
				window(from, to, ptr.Ptr("reserved")),
			},
		})

		require.False(t, result.Available)
		assert.Equal(t, "boat unavailable: cleaning", result.Reason)
	})

	t.Run("range boundaries are inclusive", func(t *testing.T) {
		for _, date := range []time.Time{from, to} {
			result := Check(CheckInput{
				Date:          date,
				RequestedSlot: domain.SlotMorning,
				Windows:       []*domain.UnavailabilityWindow{window(from, to, nil)},
			})
			assert.False(t, result.Available, "date %s", date.Format("2006-01-02"))
		}
	})

	t.Run("date outside the window does not block", func(t *testing.T) {
		result := Check(CheckInput{
			Date:          time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			RequestedSlot: domain.SlotMorning,
			Windows:       []*domain.UnavailabilityWindow{window(from, to, nil)},
		})
		assert.True(t, result.Available)
	})

	t.Run("booking conflict reason wins over window reason", func(t *testing.T) {
		result := Check(CheckInput{
			Date:          testDate,
			RequestedSlot: domain.SlotFullDay,
			Bookings:      []*domain.Booking{booking(1, domain.SlotFullDay, domain.StatusConfirmed)},
			Windows:       []*domain.UnavailabilityWindow{window(from, to, ptr.Ptr("maintenance"))},
		})

		require.False(t, result.Available)
		assert.Equal(t, ReasonFullDayBooked, result.Reason)
	})
}

func TestCheck_ExcludeBookingID(t *testing.T) {
	t.Run("booking under edit does not conflict with itself", func(t *testing.T) {
		result := Check(CheckInput{
			Date:             testDate,
			RequestedSlot:    domain.SlotFullDay,
			ExcludeBookingID: ptr.Ptr(int64(42)),
			Bookings:         []*domain.Booking{booking(42, domain.SlotFullDay, domain.StatusConfirmed)},
		})

		assert.True(t, result.Available)
	})

	t.Run("other bookings still conflict during edit", func(t *testing.T) {
		result := Check(CheckInput{
			Date:             testDate,
			RequestedSlot:    domain.SlotFullDay,
			ExcludeBookingID: ptr.Ptr(int64(42)),
			Bookings: []*domain.Booking{
				booking(42, domain.SlotFullDay, domain.StatusConfirmed),
				booking(43, domain.SlotMorning, domain.StatusConfirmed),
			},
		})

		require.False(t, result.Available)
		assert.Equal(t, ReasonHalfDayBooked, result.Reason)
	})
}

func TestCheck_Idempotence(t *testing.T) {
	in := CheckInput{
		Date:          testDate,
		RequestedSlot: domain.SlotAfternoon,
		Bookings: []*domain.Booking{
			booking(1, domain.SlotMorning, domain.StatusConfirmed),
			booking(2, domain.SlotAfternoon, domain.StatusCancelled),
		},
	}

	first := Check(in)
	second := Check(in)

	assert.Equal(t, first, second)
	assert.True(t, first.Available)
}
