package dining_selection

import (
	"github.com/castelmar/CH-BookingService/internal/picker"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

type SelectionService interface {
	DispatchDining(sessionID, action string, date types.DateString) (picker.DateState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
