package picker

import "github.com/castelmar/CH-BookingService/pkg/types"

// DateState is the state of the single-date picker used for dining
// reservations. Один выбранный день, без фаз и правил коррекции.
type DateState struct {
	SelectedDate types.DateString
}

// NewDateState returns the initial single-date picker state
func NewDateState() DateState {
	return DateState{}
}

// HasSelection reports whether a date is selected
func (s DateState) HasSelection() bool {
	return !s.SelectedDate.IsZero()
}

// ClickDate selects the clicked date, overwriting any previous selection.
// Dates strictly before today are silently ignored.
func (s DateState) ClickDate(d, today types.DateString) DateState {
	if d.IsBefore(today) {
		return s
	}
	return DateState{SelectedDate: d}
}

// Clear resets the selection
func (s DateState) Clear() DateState {
	return NewDateState()
}
