package calculate_price

import (
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// Request модель запроса на расчет цены
type Request struct {
	BoatID     int64     // ID лодки
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата бронирования (без времени)
	Passengers int       // Количество пассажиров
}

// Response рассчитанная цена
// Цена - рекомендация: при создании бронирования стаф может её переопределить
type Response struct {
	Price  float64
	Season domain.Season
}
