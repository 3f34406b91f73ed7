package domain

import "time"

// ServiceType kind of rentable offering
type ServiceType string

const (
	ServiceRental  ServiceType = "rental"
	ServiceCharter ServiceType = "charter"
)

// Service represents a rentable offering tied to a boat
type Service struct {
	ID        int64
	BoatID    int64
	Name      string
	Type      ServiceType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Season is one of the four fixed month-groupings used to select a price tier
type Season string

const (
	SeasonLow  Season = "low"  // April, May, October
	SeasonMid  Season = "mid"  // June
	SeasonHigh Season = "high" // July, September
	SeasonPeak Season = "peak" // August
)

// SeasonForMonth maps a month onto its season bracket.
// November through March have no bracket; ok is false for them.
func SeasonForMonth(m time.Month) (Season, bool) {
	switch m {
	case time.April, time.May, time.October:
		return SeasonLow, true
	case time.June:
		return SeasonMid, true
	case time.July, time.September:
		return SeasonHigh, true
	case time.August:
		return SeasonPeak, true
	default:
		return "", false
	}
}

// PassengerTier price for a passenger-count range within a season.
// Boundaries are inclusive on both ends.
type PassengerTier struct {
	MinPassengers int
	MaxPassengers int
	Price         float64
}

// Contains returns true if the tier's range contains n
func (t PassengerTier) Contains(n int) bool {
	return n >= t.MinPassengers && n <= t.MaxPassengers
}

// SeasonPrice price configuration for one season bracket.
// Either a flat price or a set of passenger tiers; tiers win when present.
type SeasonPrice struct {
	Season    Season
	FlatPrice *float64
	Tiers     []PassengerTier
}

// HasTiers returns true if the season defines passenger-count sub-tiers
func (s *SeasonPrice) HasTiers() bool {
	return len(s.Tiers) > 0
}

// PriceSchedule seasonal/passenger-tiered price table for a service.
// BoatID is nil for the service default schedule and set for a
// boat-specific override; the override wins when both exist.
type PriceSchedule struct {
	ID        int64
	ServiceID int64
	BoatID    *int64
	Seasons   []SeasonPrice
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeasonPrice returns the price configuration for the given season, if defined
func (p *PriceSchedule) SeasonPrice(season Season) (*SeasonPrice, bool) {
	for i := range p.Seasons {
		if p.Seasons[i].Season == season {
			return &p.Seasons[i], true
		}
	}
	return nil, false
}

// IsBoatOverride returns true if the schedule is a boat-specific override
func (p *PriceSchedule) IsBoatOverride() bool {
	return p.BoatID != nil
}
