package get_dining_calendar

import (
	getDiningCalendar "github.com/castelmar/CH-BookingService/internal/usecase/get_dining_calendar"
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
	Date         string                    `json:"date"`
	InMonth      bool                      `json:"inMonth"`
	IsToday      bool                      `json:"isToday"`
	IsPast       bool                      `json:"isPast"`
	Reservations []DayReservationResponse  `json:"reservations"`
	Counts       []RestaurantCountResponse `json:"counts"`
}

// DayReservationResponse бронирование столика в ячейке календаря
type DayReservationResponse struct {
	ID         string `json:"id"`
	GuestName  string `json:"guestName"`
	Restaurant string `json:"restaurant"`
	Color      string `json:"color"`
	TimeSlot   string `json:"timeSlot"`
}

// RestaurantCountResponse количество бронирований ресторана на дату
type RestaurantCountResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDiningCalendar.Response) *CalendarResponse {
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
			Counts:       make([]RestaurantCountResponse, 0, len(day.Counts)),
		}

		for _, res := range day.Reservations {
			d.Reservations = append(d.Reservations, DayReservationResponse{
				ID:         res.ID,
				GuestName:  res.GuestName,
				Restaurant: res.Restaurant,
				Color:      res.Color,
				TimeSlot:   res.TimeSlot.String(),
			})
		}

		for _, count := range day.Counts {
			d.Counts = append(d.Counts, RestaurantCountResponse{
				Name:  count.Name,
				Color: count.Color,
				Count: count.Count,
			})
		}

		out.Days = append(out.Days, d)
	}

	return out
}
