package create_booking

import (
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	BoatID    int64 // ID лодки
	ServiceID int64 // ID услуги

	CustomerName  string  // Имя клиента
	CustomerPhone *string // Телефон (опционально)
	CustomerEmail *string // Email (опционально)

	Date       time.Time       // Дата бронирования (без времени)
	TimeSlot   domain.TimeSlot // Слот: morning / afternoon / full_day / произвольный
	Passengers int             // Количество пассажиров

	// PriceOverride ручная цена от стафа; перекрывает рекомендацию резолвера
	PriceOverride *float64
	Deposit       float64

	Status *domain.BookingStatus // Статус (опционально, по умолчанию pending)
	Notes  *string               // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
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

	BasePrice  float64 // Рекомендация резолвера цен
	FinalPrice float64 // Итоговая цена (возможно переопределенная)
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
