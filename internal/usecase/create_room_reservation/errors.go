package create_room_reservation

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория номера не найдена
	ErrCategoryNotFound = errors.New("create_room_reservation: room category not found")

	// ErrInvalidDateRange возвращается, когда диапазон дат некорректен
	// (заезд не раньше выезда)
	ErrInvalidDateRange = errors.New("create_room_reservation: check-in must be before check-out")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("create_room_reservation: check-in date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_room_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_room_reservation: internal error")
)
