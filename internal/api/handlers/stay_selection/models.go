package stay_selection

import (
	"github.com/castelmar/CH-BookingService/internal/picker"
)

// SelectionActionRequest HTTP request model
type SelectionActionRequest struct {
	Action string `json:"action"`         // date_clicked, clear, focus_check_in, focus_check_out
	Date   string `json:"date,omitempty"` // "2025-10-15", нужна только для date_clicked
}

// RangeStateResponse состояние диапазонного пикера
type RangeStateResponse struct {
	CheckIn    string `json:"checkIn"`  // пустая строка - не выбрано
	CheckOut   string `json:"checkOut"` // пустая строка - не выбрано
	Picking    string `json:"picking"`  // awaiting_check_in или awaiting_check_out
	IsComplete bool   `json:"isComplete"`
}

// FromRangeState конвертирует состояние пикера в HTTP response
func FromRangeState(state picker.RangeState) *RangeStateResponse {
	return &RangeStateResponse{
		CheckIn:    state.CheckIn.String(),
		CheckOut:   state.CheckOut.String(),
		Picking:    string(state.Picking),
		IsComplete: state.IsComplete(),
	}
}
