package create_room_reservation

import (
	"fmt"
	"strings"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName must be at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	email := strings.TrimSpace(req.GuestEmail)
	if email == "" {
		return fmt.Errorf("%w: guestEmail is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: guestEmail is not a valid email address", ErrInvalidInput)
	}

	if req.RoomCategory == "" {
		return fmt.Errorf("%w: roomCategory is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}
	if err := req.CheckIn.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkIn format: %v", ErrInvalidInput, err)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}
	if err := req.CheckOut.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkOut format: %v", ErrInvalidInput, err)
	}

	if req.Adults < domain.MinGuestsPerReservation {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinGuestsPerReservation)
	}
	if req.Adults > domain.MaxAdultsPerReservation {
		return fmt.Errorf("%w: adults must be at most %d", ErrInvalidInput, domain.MaxAdultsPerReservation)
	}
	if req.Children < 0 || req.Children > domain.MaxChildrenPerReservation {
		return fmt.Errorf("%w: children must be between 0 and %d", ErrInvalidInput, domain.MaxChildrenPerReservation)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDates проверяет диапазон дат проживания.
// Заезд строго раньше выезда: бронирование на одну и ту же дату
// (ноль ночей) не допускается.
func validateDates(checkIn, checkOut, today types.DateString) error {
	if !checkIn.IsBefore(checkOut) {
		return ErrInvalidDateRange
	}

	if checkIn.IsBefore(today) {
		return ErrDateInPast
	}

	return nil
}
