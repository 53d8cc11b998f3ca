package create_room_reservation

import (
	"time"

	"github.com/castelmar/CH-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования номера
type Request struct {
	GuestName    string           // Имя гостя
	GuestEmail   string           // Email гостя
	GuestPhone   string           // Телефон гостя (опционально)
	CheckIn      types.DateString // Дата заезда
	CheckOut     types.DateString // Дата выезда
	RoomCategory string           // Имя категории номера
	Adults       int              // Количество взрослых
	Children     int              // Количество детей
	Notes        *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string           // Идентификатор бронирования
	GuestName    string           // Имя гостя
	GuestEmail   string           // Email гостя
	GuestPhone   string           // Телефон гостя
	CheckIn      types.DateString // Дата заезда
	CheckOut     types.DateString // Дата выезда
	RoomCategory string           // Имя категории номера
	Nights       int              // Количество ночей
	Adults       int              // Количество взрослых
	Children     int              // Количество детей
	Notes        *string          // Пожелания гостя
	CreatedAt    time.Time        // Время создания записи
}
