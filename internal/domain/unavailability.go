package domain

import "time"

// UnavailabilityWindow is a staff-declared inclusive date range making a
// boat fully unbookable, independent of time slot. Windows are created
// and deleted whole; edits are delete+recreate.
type UnavailabilityWindow struct {
	ID        int64
	BoatID    int64
	DateFrom  time.Time
	DateTo    time.Time
	Reason    *string
	CreatedAt time.Time
}

// Covers returns true if date falls inside the inclusive range [DateFrom, DateTo]
func (w *UnavailabilityWindow) Covers(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(w.DateFrom)) && !d.After(truncateToDay(w.DateTo))
}

// ReasonOrDefault returns the window's reason, or the default when none was given
func (w *UnavailabilityWindow) ReasonOrDefault() string {
	if w.Reason != nil && *w.Reason != "" {
		return *w.Reason
	}
	return DefaultUnavailabilityReason
}

// truncateToDay обнуляет время, чтобы сравнивать только даты
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
