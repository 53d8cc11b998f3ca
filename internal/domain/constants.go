package domain

import "github.com/castelmar/CH-BookingService/pkg/types"

// Time and date format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinGuestsPerReservation   = 1
	MaxAdultsPerReservation   = 10
	MaxChildrenPerReservation = 10
	MaxNotesLength            = 500
	MaxGuestNameLength        = 200
)

// Calendar year bounds accepted by the API
const (
	MinCalendarYear = 2000
	MaxCalendarYear = 2100
)

// UnknownCategoryName имя категории-заглушки для бронирований,
// ссылающихся на удалённую или неизвестную категорию
const UnknownCategoryName = "unknown"

// UnknownCategoryColor цвет категории-заглушки в календарных легендах
const UnknownCategoryColor = "#9e9e9e"

// DiningTimeSlots фиксированный набор временных слотов ресторана.
// Бронирование столика допустимо только на один из этих слотов.
var DiningTimeSlots = []types.TimeString{
	"12:00", "12:30", "13:00", "13:30", "14:00",
	"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
}

// IsValidDiningTimeSlot reports whether the given time is one of the fixed dining slots
func IsValidDiningTimeSlot(slot types.TimeString) bool {
	for _, s := range DiningTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
