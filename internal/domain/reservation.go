package domain

import (
	"time"

	"github.com/castelmar/CH-BookingService/pkg/types"
)

// RoomReservation represents a guest's stay in a room of a given category.
// CheckIn is the arrival date, CheckOut the departure date; a valid
// reservation always has CheckIn strictly before CheckOut.
type RoomReservation struct {
	ID           string
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckIn      types.DateString
	CheckOut     types.DateString
	RoomCategory string // имя категории номера (ссылка по имени)
	Adults       int
	Children     int
	Notes        *string
	CreatedAt    time.Time
}

// Nights returns the number of nights of the stay.
// Для некорректных дат возвращает 0.
func (r *RoomReservation) Nights() int {
	checkIn, err := r.CheckIn.Time()
	if err != nil {
		return 0
	}
	checkOut, err := r.CheckOut.Time()
	if err != nil {
		return 0
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// Occupies reports whether the reservation occupies the given date.
// The checkout date itself counts as occupied (inclusive-inclusive rule):
// the room is still shown as marked on the departure day.
func (r *RoomReservation) Occupies(date types.DateString) bool {
	return !date.IsBefore(r.CheckIn) && !date.IsAfter(r.CheckOut)
}

// DiningReservation represents a restaurant table booking on a single date
// for one of the fixed dining time slots.
type DiningReservation struct {
	ID         string
	GuestName  string
	GuestEmail string
	GuestPhone string
	Restaurant string // имя ресторана (ссылка по имени)
	Date       types.DateString
	TimeSlot   types.TimeString
	Adults     int
	Children   int
	Notes      *string
	CreatedAt  time.Time
}

// RoomReservationsFilter фильтр для выборки бронирований номеров
type RoomReservationsFilter struct {
	// Период пересечения: выбираются бронирования, чей интервал
	// [CheckIn, CheckOut] пересекается с [StartDate, EndDate].
	// nil - без ограничения.
	StartDate *types.DateString
	EndDate   *types.DateString
	// Фильтр по категории номера (опционально)
	RoomCategory *string
}

// DiningReservationsFilter фильтр для выборки бронирований столиков
type DiningReservationsFilter struct {
	Date       *types.DateString // конкретная дата (опционально)
	Restaurant *string           // имя ресторана (опционально)
}
