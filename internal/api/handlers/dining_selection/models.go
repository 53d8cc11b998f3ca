package dining_selection

import (
	"github.com/castelmar/CH-BookingService/internal/picker"
)

// SelectionActionRequest HTTP request model
type SelectionActionRequest struct {
	Action string `json:"action"`         // date_clicked, clear
	Date   string `json:"date,omitempty"` // "2025-10-15", нужна только для date_clicked
}

// DateStateResponse состояние однодатного пикера
type DateStateResponse struct {
	SelectedDate string `json:"selectedDate"` // пустая строка - не выбрано
	HasSelection bool   `json:"hasSelection"`
}

// FromDateState конвертирует состояние пикера в HTTP response
func FromDateState(state picker.DateState) *DateStateResponse {
	return &DateStateResponse{
		SelectedDate: state.SelectedDate.String(),
		HasSelection: state.HasSelection(),
	}
}
