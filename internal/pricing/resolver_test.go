package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	"github.com/velmare/Nautic-BookingService/pkg/ptr"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

func flatSchedule() *domain.PriceSchedule {
	return &domain.PriceSchedule{
		ID:        1,
		ServiceID: 1,
		Seasons: []domain.SeasonPrice{
			{Season: domain.SeasonLow, FlatPrice: ptr.Ptr(200.0)},
			{Season: domain.SeasonMid, FlatPrice: ptr.Ptr(300.0)},
			{Season: domain.SeasonHigh, FlatPrice: ptr.Ptr(400.0)},
			{Season: domain.SeasonPeak, FlatPrice: ptr.Ptr(500.0)},
		},
	}
}

func tieredSchedule() *domain.PriceSchedule {
	return &domain.PriceSchedule{
		ID:        2,
		ServiceID: 1,
		BoatID:    ptr.Ptr(int64(7)),
		Seasons: []domain.SeasonPrice{
			{
				Season: domain.SeasonPeak,
				Tiers: []domain.PassengerTier{
					{MinPassengers: 1, MaxPassengers: 4, Price: 450},
					{MinPassengers: 5, MaxPassengers: 8, Price: 600},
				},
			},
			{Season: domain.SeasonLow, FlatPrice: ptr.Ptr(250.0)},
		},
	}
}

func TestResolve_SeasonBrackets(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		price float64
	}{
		{"april is low season", date(time.April, 1), 200},
		{"may is low season", date(time.May, 20), 200},
		{"october is low season", date(time.October, 31), 200},
		{"june is mid season", date(time.June, 15), 300},
		{"july is high season", date(time.July, 10), 400},
		{"september is high season", date(time.September, 30), 400},
		{"august is peak season", date(time.August, 15), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := Resolve(flatSchedule(), tt.date, 6)
			require.NoError(t, err)
			assert.Equal(t, tt.price, price)
		})
	}
}

func TestResolve_UndefinedSeasonFailsLoud(t *testing.T) {
	for _, month := range []time.Month{time.January, time.February, time.March, time.November, time.December} {
		t.Run(month.String(), func(t *testing.T) {
			price, err := Resolve(flatSchedule(), date(month, 10), 2)
			require.ErrorIs(t, err, ErrSeasonNotConfigured)
			assert.Zero(t, price)
		})
	}
}

func TestResolve_PassengerTiers(t *testing.T) {
	tests := []struct {
		name       string
		passengers int
		price      float64
		wantErr    error
	}{
		{"lower boundary of first tier", 1, 450, nil},
		{"upper boundary of first tier", 4, 450, nil},
		{"lower boundary of second tier", 5, 600, nil},
		{"upper boundary of second tier", 8, 600, nil},
		{"above all tiers", 9, 0, ErrNoTierForPassengers},
		{"below all tiers", 0, 0, ErrNoTierForPassengers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := Resolve(tieredSchedule(), date(time.August, 15), tt.passengers)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.price, price)
		})
	}
}

func TestResolve_FlatSeasonIgnoresPassengerCount(t *testing.T) {
	// Scenario: August flat price 500, no tiers - any party size pays 500
	schedule := &domain.PriceSchedule{
		ID:        3,
		ServiceID: 1,
		Seasons: []domain.SeasonPrice{
			{Season: domain.SeasonPeak, FlatPrice: ptr.Ptr(500.0)},
		},
	}

	price, err := Resolve(schedule, date(time.August, 15), 6)
	require.NoError(t, err)
	assert.Equal(t, 500.0, price)
}

func TestResolve_ConfigurationErrors(t *testing.T) {
	t.Run("nil schedule", func(t *testing.T) {
		_, err := Resolve(nil, date(time.August, 15), 2)
		assert.ErrorIs(t, err, ErrScheduleNotConfigured)
	})

	t.Run("season missing from schedule", func(t *testing.T) {
		// Схема с одним сезоном low - запрос на август должен падать,
		// а не молча возвращать ноль
		schedule := &domain.PriceSchedule{
			ID:        4,
			ServiceID: 1,
			Seasons:   []domain.SeasonPrice{{Season: domain.SeasonLow, FlatPrice: ptr.Ptr(250.0)}},
		}

		price, err := Resolve(schedule, date(time.August, 15), 2)
		require.ErrorIs(t, err, ErrSeasonNotConfigured)
		assert.Zero(t, price)
	})

	t.Run("season present but price empty", func(t *testing.T) {
		schedule := &domain.PriceSchedule{
			ID:        5,
			ServiceID: 1,
			Seasons:   []domain.SeasonPrice{{Season: domain.SeasonPeak}},
		}

		_, err := Resolve(schedule, date(time.August, 15), 2)
		assert.ErrorIs(t, err, ErrSeasonNotConfigured)
	})
}
