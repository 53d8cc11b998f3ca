package get_room_calendar

import (
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// Request модель запроса календаря номеров на месяц
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
	Date         types.DateString // Дата ячейки
	InMonth      bool             // Принадлежит ли отображаемому месяцу
	IsToday      bool             // Является ли сегодняшним днём
	IsPast       bool             // Находится ли в прошлом
	Reservations []DayReservation // Бронирования, занимающие эту дату
	Availability *DayAvailability // Доступность по категориям (nil для ячеек-заполнителей)
}

// DayReservation бронирование в ячейке календаря
type DayReservation struct {
	ID           string           // Идентификатор бронирования
	GuestName    string           // Имя гостя
	RoomCategory string           // Имя категории номера как записано в бронировании
	Color        string           // Цвет категории для отображения
	CheckIn      types.DateString // Дата заезда
	CheckOut     types.DateString // Дата выезда
	IsArrival    bool             // Заезд в этот день
	IsDeparture  bool             // Выезд в этот день
}

// DayAvailability сводка доступности номеров на дату
type DayAvailability struct {
	Categories     []CategoryAvailability // Построчно по категориям
	TotalUnits     int                    // Всего номеров по всем категориям
	TotalBooked    int                    // Всего занято
	TotalAvailable int                    // Всего свободно
}

// CategoryAvailability доступность одной категории на дату
type CategoryAvailability struct {
	Name       string // Имя категории
	Color      string // Цвет категории
	TotalUnits int    // Всего номеров категории
	Booked     int    // Занято
	Available  int    // Свободно (не бывает отрицательным)
}
