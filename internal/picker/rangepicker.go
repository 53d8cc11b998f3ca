package picker

import "github.com/castelmar/CH-BookingService/pkg/types"

// Phase indicates which endpoint of the date range the next click sets
type Phase string

const (
	AwaitingCheckIn  Phase = "awaiting_check_in"
	AwaitingCheckOut Phase = "awaiting_check_out"
)

// RangeState is the full state of the two-click check-in/check-out picker.
// The zero value of CheckIn/CheckOut ("") means "not selected".
//
// Invariant: whenever both dates are set, CheckIn is strictly before CheckOut.
// The transition rules below make an inverted or equal pair structurally
// unreachable.
type RangeState struct {
	CheckIn  types.DateString
	CheckOut types.DateString
	Picking  Phase
}

// NewRangeState returns the initial picker state: no dates, awaiting check-in
func NewRangeState() RangeState {
	return RangeState{Picking: AwaitingCheckIn}
}

// IsComplete reports whether both endpoints are selected
func (s RangeState) IsComplete() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero()
}

// ClickDate applies a day-cell click to the state and returns the next state.
// today is injected by the caller; dates strictly before today are ignored.
//
// Правила перехода:
//   - В фазе AwaitingCheckIn клик устанавливает дату заезда. Если ранее
//     выбранная дата выезда оказывается не позже новой даты заезда, она
//     сбрасывается. Фаза переходит в AwaitingCheckOut.
//   - В фазе AwaitingCheckOut клик по дате не позже текущего заезда начинает
//     выбор заново (новый заезд, выезд сброшен, фаза не меняется);
//     клик по более поздней дате завершает диапазон. Фаза остаётся
//     AwaitingCheckOut: вернуться к выбору заезда можно через FocusCheckIn
//     или Clear.
func (s RangeState) ClickDate(d, today types.DateString) RangeState {
	// Прошедшие даты молча игнорируются
	if d.IsBefore(today) {
		return s
	}

	switch s.Picking {
	case AwaitingCheckOut:
		if s.CheckIn.IsZero() {
			// Фаза выбора выезда без заезда недостижима через обычные
			// переходы, но на всякий случай: клик задаёт заезд
			return RangeState{CheckIn: d, Picking: AwaitingCheckOut}
		}
		if !d.IsAfter(s.CheckIn) {
			// Клик на дате заезда или раньше неё: начинаем выбор заново,
			// следующий корректный клик завершит диапазон
			return RangeState{CheckIn: d, Picking: AwaitingCheckOut}
		}
		return RangeState{CheckIn: s.CheckIn, CheckOut: d, Picking: AwaitingCheckOut}

	default: // AwaitingCheckIn
		next := RangeState{CheckIn: d, CheckOut: s.CheckOut, Picking: AwaitingCheckOut}
		// Старый выезд больше не согласуется с новым заездом - сбрасываем
		if !next.CheckOut.IsZero() && !d.IsBefore(next.CheckOut) {
			next.CheckOut = ""
		}
		return next
	}
}

// Clear resets both dates and returns to the initial phase
func (s RangeState) Clear() RangeState {
	return NewRangeState()
}

// FocusCheckIn forces the next click to set the check-in date.
// Используется при клике на поле «Дата заезда».
func (s RangeState) FocusCheckIn() RangeState {
	s.Picking = AwaitingCheckIn
	return s
}

// FocusCheckOut forces the next click to set the check-out date, but only if
// a check-in is already selected; otherwise it is a no-op.
func (s RangeState) FocusCheckOut() RangeState {
	if s.CheckIn.IsZero() {
		return s
	}
	s.Picking = AwaitingCheckOut
	return s
}
