package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BlocksAvailability returns true if a booking in this status occupies
// the boat for its date and slot. Cancellation releases the slot; every
// other status keeps it occupied.
func (s BookingStatus) BlocksAvailability() bool {
	return s != StatusCancelled
}

// IsValid returns true for a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a boat reservation for one calendar date and time slot
type Booking struct {
	ID        int64
	BoatID    int64
	ServiceID int64

	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string

	BookingDate time.Time // calendar day, slot carries the time-of-day semantics
	TimeSlot    TimeSlot
	Passengers  int

	// BasePrice is the resolver suggestion, FinalPrice the amount actually
	// charged (staff may override the suggestion)
	BasePrice  float64
	FinalPrice float64
	Deposit    float64

	Status BookingStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks returns true if the booking occupies its boat/date/slot
func (b *Booking) Blocks() bool {
	return b.Status.BlocksAvailability()
}

// Balance returns the amount still due after the deposit
func (b *Booking) Balance() float64 {
	return b.FinalPrice - b.Deposit
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can be updated
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BoatBookingsFilter фильтр для получения бронирований лодки
type BoatBookingsFilter struct {
	BoatID           int64          // Обязательный параметр
	StartDate        *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate          *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
	ExcludeBookingID *int64         // Исключить бронирование (перепроверка при редактировании)
}
