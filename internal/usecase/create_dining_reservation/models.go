package create_dining_reservation

import (
	"time"

	"github.com/castelmar/CH-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования столика
type Request struct {
	GuestName  string           // Имя гостя
	GuestEmail string           // Email гостя
	GuestPhone string           // Телефон гостя (опционально)
	Restaurant string           // Имя ресторана
	Date       types.DateString // Дата бронирования
	TimeSlot   types.TimeString // Временной слот из фиксированного набора
	Adults     int              // Количество взрослых
	Children   int              // Количество детей
	Notes      *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string           // Идентификатор бронирования
	GuestName  string           // Имя гостя
	GuestEmail string           // Email гостя
	GuestPhone string           // Телефон гостя
	Restaurant string           // Имя ресторана
	Date       types.DateString // Дата бронирования
	TimeSlot   types.TimeString // Временной слот
	Adults     int              // Количество взрослых
	Children   int              // Количество детей
	Notes      *string          // Пожелания гостя
	CreatedAt  time.Time        // Время создания записи
}
