package stay_selection

import (
	"github.com/castelmar/CH-BookingService/internal/picker"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

type SelectionService interface {
	DispatchStay(sessionID, action string, date types.DateString) (picker.RangeState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
