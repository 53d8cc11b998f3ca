package calendar

import (
	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// CategoryAvailability is the per-category occupancy picture for one date
type CategoryAvailability struct {
	Category   domain.RoomCategory
	TotalUnits int
	Booked     int
	Available  int
}

// IsFull reports whether the category has no free units on the date
func (a *CategoryAvailability) IsFull() bool {
	return a.Available <= 0
}

// RoomAvailability is the full availability report for one date
type RoomAvailability struct {
	Date       types.DateString
	Categories []CategoryAvailability
	// Агрегаты по всем категориям
	TotalUnits     int
	TotalBooked    int
	TotalAvailable int
	// Бронирования, ссылающиеся на несуществующую категорию.
	// Исключены из строк категорий, но не теряются молча.
	UnknownCategoryBookings int
}

// ComputeRoomAvailability computes, for every room category, how many units
// are booked versus free on the target date. A reservation occupies the date
// under the inclusive-inclusive rule CheckIn <= date <= CheckOut: a departing
// guest's room still counts as occupied on the checkout date. Available is
// clamped at zero, so an overbooked category reports 0, never a negative.
//
// Reservations whose category name resolves to none of the given categories
// are counted in UnknownCategoryBookings and excluded from every row.
func ComputeRoomAvailability(categories []domain.RoomCategory, reservations []*domain.RoomReservation, targetDate types.DateString) RoomAvailability {
	result := RoomAvailability{
		Date:       targetDate,
		Categories: make([]CategoryAvailability, 0, len(categories)),
	}

	// Счётчик занятых номеров по имени категории
	bookedByCategory := make(map[string]int, len(categories))
	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.Name] = true
	}

	for _, res := range reservations {
		if res.CheckIn.Validate() != nil || res.CheckOut.Validate() != nil {
			continue
		}
		if !res.Occupies(targetDate) {
			continue
		}
		if !known[res.RoomCategory] {
			result.UnknownCategoryBookings++
			continue
		}
		bookedByCategory[res.RoomCategory]++
	}

	for _, cat := range categories {
		booked := bookedByCategory[cat.Name]
		available := cat.TotalUnits - booked
		if available < 0 {
			available = 0
		}

		result.Categories = append(result.Categories, CategoryAvailability{
			Category:   cat,
			TotalUnits: cat.TotalUnits,
			Booked:     booked,
			Available:  available,
		})

		result.TotalUnits += cat.TotalUnits
		result.TotalBooked += booked
		result.TotalAvailable += available
	}

	return result
}

// CountDiningReservations counts dining reservations per restaurant on the
// exact date. Restaurants carry no table cap, so this is an informational
// count, not a remaining-capacity figure.
func CountDiningReservations(reservations []*domain.DiningReservation, targetDate types.DateString) map[string]int {
	counts := make(map[string]int)
	for _, res := range reservations {
		if res.Date != targetDate {
			continue
		}
		counts[res.Restaurant]++
	}
	return counts
}
