package create_dining_reservation

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_dining_reservation: restaurant not found")

	// ErrInvalidTimeSlot возвращается, когда время не входит в фиксированный
	// набор слотов ресторана
	ErrInvalidTimeSlot = errors.New("create_dining_reservation: invalid time slot")

	// ErrDateInPast возвращается, когда дата бронирования в прошлом
	ErrDateInPast = errors.New("create_dining_reservation: date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_dining_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_dining_reservation: internal error")
)
