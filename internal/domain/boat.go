package domain

import "time"

// SeasonalPrices per-season base prices for a boat offering
type SeasonalPrices struct {
	High float64
	Mid  float64
	Low  float64
}

// Boat represents a rentable vessel
// Boats are referenced, never owned, by bookings and unavailability windows
type Boat struct {
	ID            int64
	Name          string
	BoatType      string
	MaxPassengers int

	// Base price grids per offering kind; the price resolver works off
	// service price schedules, these are the staff-facing defaults
	RentalPrices  SeasonalPrices
	CharterPrices SeasonalPrices

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FitsPassengers returns true if the boat can carry the requested party
func (b *Boat) FitsPassengers(n int) bool {
	return n > 0 && n <= b.MaxPassengers
}
