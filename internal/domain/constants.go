package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultUnavailabilityReason используется, когда окно недоступности создано без причины
const DefaultUnavailabilityReason = "maintenance"

// Business validation constants
const (
	MinPassengers                 = 1
	MaxNotesLength                = 500
	MaxCustomerNameLength         = 200
	MaxUnavailabilityReasonLength = 200
	MaxTimeSlotLength             = 50
)
