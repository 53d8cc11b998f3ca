package get_dining_calendar

import (
	"context"

	getDiningCalendar "github.com/castelmar/CH-BookingService/internal/usecase/get_dining_calendar"
)

type GetDiningCalendarUseCase interface {
	Execute(ctx context.Context, req *getDiningCalendar.Request) (*getDiningCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
