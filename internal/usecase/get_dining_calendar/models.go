package get_dining_calendar

import (
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// Request модель запроса календаря ресторанов на месяц
type Request struct {
	Year  int // Год (например, 2024)
	Month int // Месяц (1-12)
}

// Response модель ответа с календарной сеткой на месяц
type Response struct {
	Year  int              // Запрошенный год
	Month int              // Запрошенный месяц
	Today types.DateString // Сегодняшняя дата сервера
	Days  []Day            // Ячейки сетки, длина всегда кратна 7
}

// Day одна ячейка календарной сетки
type Day struct {
	Date         types.DateString  // Дата ячейки
	InMonth      bool              // Принадлежит ли отображаемому месяцу
	IsToday      bool              // Является ли сегодняшним днём
	IsPast       bool              // Находится ли в прошлом
	Reservations []DayReservation  // Бронирования столиков на эту дату
	Counts       []RestaurantCount // Количество бронирований по ресторанам
}

// DayReservation бронирование столика в ячейке календаря
type DayReservation struct {
	ID         string           // Идентификатор бронирования
	GuestName  string           // Имя гостя
	Restaurant string           // Имя ресторана как записано в бронировании
	Color      string           // Цвет ресторана для отображения
	TimeSlot   types.TimeString // Временной слот
}

// RestaurantCount количество бронирований одного ресторана на дату.
// Рестораны не имеют лимита столиков, поэтому это информационный счётчик,
// а не остаток мест.
type RestaurantCount struct {
	Name  string // Имя ресторана
	Color string // Цвет ресторана
	Count int    // Количество бронирований
}
