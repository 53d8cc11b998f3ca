package get_room_availability

import (
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// Request модель запроса доступности номеров на дату.
// Пустая дата означает "на сегодня".
type Request struct {
	Date types.DateString // Целевая дата (опционально)
}

// Response модель ответа с доступностью номеров по категориям
type Response struct {
	Date       types.DateString       // Дата, на которую рассчитана доступность
	Categories []CategoryAvailability // Построчно по категориям
	// Агрегаты по всем категориям
	TotalUnits     int
	TotalBooked    int
	TotalAvailable int
	// Бронирования с неизвестной категорией, исключённые из строк
	UnknownCategoryBookings int
}

// CategoryAvailability доступность одной категории на дату
type CategoryAvailability struct {
	Name       string   // Имя категории
	Color      string   // Цвет категории
	Perks      []string // Особенности категории
	TotalUnits int      // Всего номеров категории
	Booked     int      // Занято
	Available  int      // Свободно (не бывает отрицательным)
	IsFull     bool     // Свободных номеров нет
}
