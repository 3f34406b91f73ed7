package domain

// TimeSlot is a time-of-day designator for a booking.
// The conflict rules understand the three standard values; any other
// value is a free-form custom slot, opaque to the conflict logic.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotFullDay   TimeSlot = "full_day"
)

// IsStandard returns true for the three slot values the conflict rules understand
func (s TimeSlot) IsStandard() bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotFullDay
}

// IsHalfDay returns true for the two half-day slots
func (s TimeSlot) IsHalfDay() bool {
	return s == SlotMorning || s == SlotAfternoon
}

// IsCustom returns true for a free-form slot value
func (s TimeSlot) IsCustom() bool {
	return !s.IsStandard()
}
