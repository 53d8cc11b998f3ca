package calendar

import (
	"time"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// RoomDayIndex maps a calendar date to the room reservations occupying it
type RoomDayIndex map[types.DateString][]*domain.RoomReservation

// DiningDayIndex maps a calendar date to the dining reservations on it
type DiningDayIndex map[types.DateString][]*domain.DiningReservation

// SkippedReservation describes a reservation excluded from an index because
// its dates could not be interpreted. Отдаётся вызывающему коду для
// логирования, индексация при этом не прерывается.
type SkippedReservation struct {
	ReservationID string
	Reason        string
}

// IndexRoomReservations builds the day-index for the given month: every date
// from CheckIn through CheckOut inclusive that falls inside the month gets
// the reservation in its bucket. The checkout date itself is indexed so the
// departure day is still visibly marked on calendars.
//
// Records with malformed dates are skipped and reported, never fatal.
func IndexRoomReservations(reservations []*domain.RoomReservation, year int, month time.Month) (RoomDayIndex, []SkippedReservation) {
	index := make(RoomDayIndex)
	var skipped []SkippedReservation

	monthStart, monthEnd := MonthBounds(year, month)

	for _, res := range reservations {
		if err := res.CheckIn.Validate(); err != nil {
			skipped = append(skipped, SkippedReservation{ReservationID: res.ID, Reason: err.Error()})
			continue
		}
		if err := res.CheckOut.Validate(); err != nil {
			skipped = append(skipped, SkippedReservation{ReservationID: res.ID, Reason: err.Error()})
			continue
		}

		// Быстрая отсечка: бронирование вообще не пересекает месяц
		if res.CheckOut.IsBefore(monthStart) || res.CheckIn.IsAfter(monthEnd) {
			continue
		}

		// Идём от max(CheckIn, monthStart) до CheckOut включительно,
		// не выходя за пределы месяца
		day := res.CheckIn
		if day.IsBefore(monthStart) {
			day = monthStart
		}

		for !day.IsAfter(res.CheckOut) && !day.IsAfter(monthEnd) {
			index[day] = append(index[day], res)

			next, err := day.AddDays(1)
			if err != nil {
				skipped = append(skipped, SkippedReservation{ReservationID: res.ID, Reason: err.Error()})
				break
			}
			day = next
		}
	}

	return index, skipped
}

// IndexDiningReservations builds the day-index for dining reservations:
// one day per record, no range walking.
func IndexDiningReservations(reservations []*domain.DiningReservation, year int, month time.Month) (DiningDayIndex, []SkippedReservation) {
	index := make(DiningDayIndex)
	var skipped []SkippedReservation

	monthStart, monthEnd := MonthBounds(year, month)

	for _, res := range reservations {
		if err := res.Date.Validate(); err != nil {
			skipped = append(skipped, SkippedReservation{ReservationID: res.ID, Reason: err.Error()})
			continue
		}

		if res.Date.IsBefore(monthStart) || res.Date.IsAfter(monthEnd) {
			continue
		}

		index[res.Date] = append(index[res.Date], res)
	}

	return index, skipped
}
