// Package pricing вычисляет цену бронирования по сезонной таблице цен.
//
// Чистая функция над таблицей цен; выбор таблицы (переопределение для
// конкретной лодки против дефолта услуги) выполняет слой хранения.
// Цена - это финансовое поле: отсутствие конфигурации всегда ошибка,
// никогда не ноль.
package pricing

import (
	"fmt"
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// Resolve вычисляет цену для даты и количества пассажиров
//
// Порядок:
//  1. Сезонный диапазон по месяцу даты: август; июнь; июль+сентябрь;
//     апрель+май+октябрь. Остальные месяцы не имеют диапазона - ошибка.
//  2. Если сезон определяет пассажирские под-диапазоны - берется диапазон,
//     содержащий numPassengers (границы включительно). Иначе - фиксированная
//     цена сезона.
//
// Результат - рекомендация: вызывающий код может переопределить цену
// вручную, резолвер это не запрещает.
func Resolve(schedule *domain.PriceSchedule, date time.Time, numPassengers int) (float64, error) {
	if schedule == nil {
		return 0, ErrScheduleNotConfigured
	}

	season, ok := domain.SeasonForMonth(date.Month())
	if !ok {
		return 0, fmt.Errorf("%w: month %s has no season bracket", ErrSeasonNotConfigured, date.Month())
	}

	seasonPrice, ok := schedule.SeasonPrice(season)
	if !ok {
		return 0, fmt.Errorf("%w: season %s missing from schedule", ErrSeasonNotConfigured, season)
	}

	if seasonPrice.HasTiers() {
		return resolveTier(seasonPrice, numPassengers)
	}

	if seasonPrice.FlatPrice == nil {
		// Сезон есть в таблице, но цена не заполнена - та же ошибка
		// конфигурации, что и отсутствующий сезон
		return 0, fmt.Errorf("%w: season %s has no price", ErrSeasonNotConfigured, season)
	}

	return *seasonPrice.FlatPrice, nil
}

// resolveTier выбирает пассажирский диапазон, содержащий numPassengers
func resolveTier(seasonPrice *domain.SeasonPrice, numPassengers int) (float64, error) {
	for _, tier := range seasonPrice.Tiers {
		if tier.Contains(numPassengers) {
			return tier.Price, nil
		}
	}
	return 0, fmt.Errorf("%w: %d passengers, season %s", ErrNoTierForPassengers, numPassengers, seasonPrice.Season)
}
