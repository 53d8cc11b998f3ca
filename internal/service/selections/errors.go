package selections

import "errors"

var (
	// ErrInvalidAction возвращается при неизвестном действии
	ErrInvalidAction = errors.New("selections.service: invalid action")

	// ErrInvalidDate возвращается, когда действие требует дату, а она
	// отсутствует или имеет неверный формат
	ErrInvalidDate = errors.New("selections.service: invalid date")

	// ErrInvalidSession возвращается при пустом идентификаторе сессии
	ErrInvalidSession = errors.New("selections.service: invalid session id")
)
