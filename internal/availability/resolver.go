// Package availability решает, можно ли забронировать лодку на дату и слот.
//
// Чистая функция над явными списками бронирований и окон недоступности,
// без обращения к хранилищу. Слой хранения отвечает только за то, чтобы
// передать сюда бронирования на (лодка, дата) и окна, покрывающие дату.
package availability

import (
	"time"

	"github.com/velmare/Nautic-BookingService/internal/domain"
)

// Human-readable conflict reasons returned to callers verbatim
const (
	ReasonFullDayBooked   = "boat already booked full day for this date"
	ReasonHalfDayBooked   = "boat already booked for half day"
	ReasonMorningBooked   = "morning already booked"
	ReasonAfternoonBooked = "afternoon already booked"

	unavailablePrefix = "boat unavailable: "
)

// Result verdict of an availability check.
// Exactly one shape: Available=true with empty Reason, or Available=false
// with a non-empty Reason.
type Result struct {
	Available bool
	Reason    string
}

// CheckInput input for an availability check.
// Bookings are the bookings for the target (boat, date); Windows are the
// unavailability windows for the boat. Date is the requested calendar day.
type CheckInput struct {
	Date             time.Time
	RequestedSlot    domain.TimeSlot
	ExcludeBookingID *int64 // бронирование, перепроверяемое при редактировании, не конфликтует само с собой
	Bookings         []*domain.Booking
	Windows          []*domain.UnavailabilityWindow
}

// Check выполняет проверку доступности
//
// Правила конфликтов по бронированиям (первое совпадение выигрывает):
//  1. Любое активное full_day бронирование блокирует любой запрашиваемый слот.
//  2. Запрос full_day блокируется любым активным morning/afternoon.
//  3. Запрос morning блокируется активным morning, afternoon - активным afternoon.
//  4. Иначе конфликта по бронированиям нет: morning и afternoon сосуществуют,
//     кастомные слоты не сталкиваются ни с чем, кроме full_day (см. правило 1).
//
// Окна недоступности проверяются независимо от слота и перекрывают
// вердикт "доступно" по бронированиям: заблокировать может любая из двух
// проверок. Отмененные бронирования слот не занимают (см. BlocksAvailability).
func Check(in CheckInput) Result {
	active := activeBookings(in.Bookings, in.ExcludeBookingID)

	if r, conflict := bookingConflict(active, in.RequestedSlot); conflict {
		return r
	}

	if r, blocked := windowVeto(in.Windows, in.Date); blocked {
		return r
	}

	return Result{Available: true}
}

// activeBookings отбирает бронирования, занимающие лодку
// Исключает перепроверяемое бронирование и неблокирующие статусы
func activeBookings(bookings []*domain.Booking, excludeID *int64) []*domain.Booking {
	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if !b.Blocks() {
			continue
		}
		active = append(active, b)
	}
	return active
}

// bookingConflict применяет упорядоченные правила конфликтов по бронированиям
func bookingConflict(active []*domain.Booking, requested domain.TimeSlot) (Result, bool) {
	// Правило 1: full_day доминирует над всеми остальными проверками
	if hasSlot(active, domain.SlotFullDay) {
		return unavailable(ReasonFullDayBooked), true
	}

	// Правило 2: full_day нельзя поверх любого полудневного бронирования
	if requested == domain.SlotFullDay && hasAnyHalfDay(active) {
		return unavailable(ReasonHalfDayBooked), true
	}

	// Правило 3: одинаковые полудневные слоты не совмещаются
	if requested == domain.SlotMorning && hasSlot(active, domain.SlotMorning) {
		return unavailable(ReasonMorningBooked), true
	}
	if requested == domain.SlotAfternoon && hasSlot(active, domain.SlotAfternoon) {
		return unavailable(ReasonAfternoonBooked), true
	}

	// Правило 4: конфликта нет; кастомные слоты не имеют интервальной
	// семантики и не сверяются со стандартными
	return Result{}, false
}

// windowVeto проверяет окна недоступности: любая дата внутри включительного
// диапазона делает лодку полностью недоступной, независимо от слота
func windowVeto(windows []*domain.UnavailabilityWindow, date time.Time) (Result, bool) {
	for _, w := range windows {
		if w.Covers(date) {
			return unavailable(unavailablePrefix + w.ReasonOrDefault()), true
		}
	}
	return Result{}, false
}

func hasSlot(bookings []*domain.Booking, slot domain.TimeSlot) bool {
	for _, b := range bookings {
		if b.TimeSlot == slot {
			return true
		}
	}
	return false
}

func hasAnyHalfDay(bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.TimeSlot.IsHalfDay() {
			return true
		}
	}
	return false
}

func unavailable(reason string) Result {
	return Result{Available: false, Reason: reason}
}
