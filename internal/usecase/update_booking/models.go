package update_booking

import (
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// Request модель запроса на обновление бронирования
// Все поля кроме ID опциональны: nil означает "не менять"
type Request struct {
	ID int64

	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string

	Date       *time.Time
	TimeSlot   *domain.TimeSlot
	Passengers *int

	// FinalPrice ручная цена от стафа
	FinalPrice *float64
	Deposit    *float64

	Status *domain.BookingStatus
	Notes  *string
}

// touchesSchedule возвращает true, если запрос меняет дату или слот -
// тогда доступность нужно перепроверить
func (r *Request) touchesSchedule() bool {
	return r.Date != nil || r.TimeSlot != nil
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        int64
	BoatID    int64
	ServiceID int64

	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string

	BookingDate time.Time
	TimeSlot    domain.TimeSlot
	Passengers  int

	BasePrice  float64
	FinalPrice float64
	Deposit    float64
	Balance    float64

	Status domain.BookingStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		BoatID:        b.BoatID,
		ServiceID:     b.ServiceID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		BookingDate:   b.BookingDate,
		TimeSlot:      b.TimeSlot,
		Passengers:    b.Passengers,
		BasePrice:     b.BasePrice,
		FinalPrice:    b.FinalPrice,
		Deposit:       b.Deposit,
		Balance:       b.Balance(),
		Status:        b.Status,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
