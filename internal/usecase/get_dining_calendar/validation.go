package get_dining_calendar

import (
	"fmt"

	"github.com/castelmar/CH-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Year < domain.MinCalendarYear || req.Year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: year must be between %d and %d",
			ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}

	return nil
}
