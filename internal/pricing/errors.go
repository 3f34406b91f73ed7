package pricing

import "errors"

var (
	// ErrScheduleNotConfigured возвращается, когда для лодки и услуги
	// не настроена ни одна таблица цен
	ErrScheduleNotConfigured = errors.New("pricing: price schedule not configured for boat and service")

	// ErrSeasonNotConfigured возвращается для дат вне определенных сезонных
	// диапазонов (ноябрь-март) или когда сезон отсутствует в таблице
	ErrSeasonNotConfigured = errors.New("pricing: no season price configured for this date")

	// ErrNoTierForPassengers возвращается, когда ни один ценовой диапазон
	// не покрывает запрошенное количество пассажиров
	ErrNoTierForPassengers = errors.New("pricing: no price tier covers this passenger count")
)
