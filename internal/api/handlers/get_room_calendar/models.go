package get_room_calendar

import (
	getRoomCalendar "github.com/castelmar/CH-BookingService/internal/usecase/get_room_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Today string        `json:"today"`
	Days  []DayResponse `json:"days"`
}

// DayResponse одна ячейка календарной сетки
type DayResponse struct {
	Date         string                   `json:"date"`
	InMonth      bool                     `json:"inMonth"`
	IsToday      bool                     `json:"isToday"`
	IsPast       bool                     `json:"isPast"`
	Reservations []DayReservationResponse `json:"reservations"`
	Availability *DayAvailabilityResponse `json:"availability,omitempty"`
}

// DayReservationResponse бронирование в ячейке календаря
type DayReservationResponse struct {
	ID           string `json:"id"`
	GuestName    string `json:"guestName"`
	RoomCategory string `json:"roomCategory"`
	Color        string `json:"color"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	IsArrival    bool   `json:"isArrival"`
	IsDeparture  bool   `json:"isDeparture"`
}

// DayAvailabilityResponse сводка доступности на дату
type DayAvailabilityResponse struct {
	Categories     []CategoryAvailabilityResponse `json:"categories"`
	TotalUnits     int                            `json:"totalUnits"`
	TotalBooked    int                            `json:"totalBooked"`
	TotalAvailable int                            `json:"totalAvailable"`
}

// CategoryAvailabilityResponse доступность одной категории
type CategoryAvailabilityResponse struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	TotalUnits int    `json:"totalUnits"`
	Booked     int    `json:"booked"`
	Available  int    `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Year:  resp.Year,
		Month: resp.Month,
		Today: resp.Today.String(),
		Days:  make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		d := DayResponse{
			Date:         day.Date.String(),
			InMonth:      day.InMonth,
			IsToday:      day.IsToday,
			IsPast:       day.IsPast,
			Reservations: make([]DayReservationResponse, 0, len(day.Reservations)),
		}

		for _, res := range day.Reservations {
			d.Reservations = append(d.Reservations, DayReservationResponse{
				ID:           res.ID,
				GuestName:    res.GuestName,
				RoomCategory: res.RoomCategory,
				Color:        res.Color,
				CheckIn:      res.CheckIn.String(),
				CheckOut:     res.CheckOut.String(),
				IsArrival:    res.IsArrival,
				IsDeparture:  res.IsDeparture,
			})
		}

		if day.Availability != nil {
			availability := &DayAvailabilityResponse{
				Categories:     make([]CategoryAvailabilityResponse, 0, len(day.Availability.Categories)),
				TotalUnits:     day.Availability.TotalUnits,
				TotalBooked:    day.Availability.TotalBooked,
				TotalAvailable: day.Availability.TotalAvailable,
			}
			for _, cat := range day.Availability.Categories {
				availability.Categories = append(availability.Categories, CategoryAvailabilityResponse{
					Name:       cat.Name,
					Color:      cat.Color,
					TotalUnits: cat.TotalUnits,
					Booked:     cat.Booked,
					Available:  cat.Available,
				})
			}
			d.Availability = availability
		}

		out.Days = append(out.Days, d)
	}

	return out
}
