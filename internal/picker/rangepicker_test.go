package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castelmar/CH-BookingService/pkg/types"
)

const today = types.DateString("2024-05-01")

func TestRangeState_Initial(t *testing.T) {
	s := NewRangeState()
	assert.True(t, s.CheckIn.IsZero())
	assert.True(t, s.CheckOut.IsZero())
	assert.Equal(t, AwaitingCheckIn, s.Picking)
	assert.False(t, s.IsComplete())
}

func TestRangeState_TwoClicksCompleteRange(t *testing.T) {
	s := NewRangeState().
		ClickDate("2024-05-10", today).
		ClickDate("2024-05-15", today)

	assert.Equal(t, types.DateString("2024-05-10"), s.CheckIn)
	assert.Equal(t, types.DateString("2024-05-15"), s.CheckOut)
	assert.True(t, s.IsComplete())
}

func TestRangeState_RestartWhenClickBeforeCheckIn(t *testing.T) {
	// Клики 10 мая, 15 мая, 5 мая: третий клик раньше текущего заезда,
	// значит выбор начинается заново
	s := NewRangeState().
		ClickDate("2024-05-10", today).
		ClickDate("2024-05-15", today).
		ClickDate("2024-05-05", today)

	assert.Equal(t, types.DateString("2024-05-05"), s.CheckIn)
	assert.True(t, s.CheckOut.IsZero())
	assert.Equal(t, AwaitingCheckOut, s.Picking)
}

func TestRangeState_CorrectionLaw(t *testing.T) {
	// В фазе AwaitingCheckOut клик по дате d <= checkIn всегда даёт
	// {checkIn: d, checkOut: пусто, picking: AwaitingCheckOut}
	tests := []struct {
		name  string
		click types.DateString
	}{
		{name: "same day as check-in", click: "2024-05-10"},
		{name: "before check-in", click: "2024-05-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRangeState().ClickDate("2024-05-10", today) // -> AwaitingCheckOut
			s = s.ClickDate(tt.click, today)

			assert.Equal(t, tt.click, s.CheckIn)
			assert.True(t, s.CheckOut.IsZero())
			assert.Equal(t, AwaitingCheckOut, s.Picking)
		})
	}
}

func TestRangeState_RestartThenComplete(t *testing.T) {
	// После рестарта следующий валидный клик завершает диапазон
	s := NewRangeState().
		ClickDate("2024-05-10", today).
		ClickDate("2024-05-05", today). // рестарт
		ClickDate("2024-05-08", today)

	assert.Equal(t, types.DateString("2024-05-05"), s.CheckIn)
	assert.Equal(t, types.DateString("2024-05-08"), s.CheckOut)
}

func TestRangeState_PastDatesIgnored(t *testing.T) {
	initial := NewRangeState()
	assert.Equal(t, initial, initial.ClickDate("2024-04-30", today))

	// И в фазе выбора выезда тоже
	s := initial.ClickDate("2024-05-10", today)
	assert.Equal(t, s, s.ClickDate("2024-04-15", today))
}

func TestRangeState_TodayIsSelectable(t *testing.T) {
	s := NewRangeState().ClickDate(today, today)
	assert.Equal(t, today, s.CheckIn)
}

func TestRangeState_RepickCheckIn(t *testing.T) {
	// Пользователь выбрал диапазон, вернулся к полю заезда и кликнул
	// другую дату
	tests := []struct {
		name         string
		click        types.DateString
		wantCheckOut types.DateString
	}{
		// Новый заезд раньше старого выезда - выезд остаётся
		{name: "keeps valid check-out", click: "2024-05-12", wantCheckOut: "2024-05-15"},
		// Новый заезд на дате выезда или позже - выезд сбрасывается
		{name: "clears check-out on same day", click: "2024-05-15", wantCheckOut: ""},
		{name: "clears check-out when after", click: "2024-05-20", wantCheckOut: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRangeState().
				ClickDate("2024-05-10", today).
				ClickDate("2024-05-15", today).
				FocusCheckIn().
				ClickDate(tt.click, today)

			assert.Equal(t, tt.click, s.CheckIn)
			assert.Equal(t, tt.wantCheckOut, s.CheckOut)
			assert.Equal(t, AwaitingCheckOut, s.Picking)
		})
	}
}

func TestRangeState_Clear(t *testing.T) {
	s := NewRangeState().
		ClickDate("2024-05-10", today).
		ClickDate("2024-05-15", today).
		Clear()

	assert.Equal(t, NewRangeState(), s)
}

func TestRangeState_FocusCheckIn(t *testing.T) {
	s := NewRangeState().
		ClickDate("2024-05-10", today) // -> AwaitingCheckOut

	s = s.FocusCheckIn()
	assert.Equal(t, AwaitingCheckIn, s.Picking)
	// Даты при этом не меняются
	assert.Equal(t, types.DateString("2024-05-10"), s.CheckIn)
}

func TestRangeState_FocusCheckOut(t *testing.T) {
	// Без выбранного заезда фокус на выезд - no-op
	s := NewRangeState().FocusCheckOut()
	assert.Equal(t, AwaitingCheckIn, s.Picking)

	// С выбранным заездом - переключает фазу
	s = NewRangeState().
		ClickDate("2024-05-10", today).
		FocusCheckIn().
		FocusCheckOut()
	assert.Equal(t, AwaitingCheckOut, s.Picking)
}

func TestRangeState_InvariantCheckInBeforeCheckOut(t *testing.T) {
	// Если обе даты выбраны, заезд всегда строго раньше выезда -
	// какой бы ни была последовательность кликов и фокусов
	dates := []types.DateString{
		"2024-05-05", "2024-05-10", "2024-05-10", "2024-05-15", "2024-05-03",
		"2024-05-03", "2024-05-21", "2024-05-21",
	}

	s := NewRangeState()
	for i, d := range dates {
		s = s.ClickDate(d, today)
		if i%3 == 0 {
			s = s.FocusCheckIn()
		}
		if s.IsComplete() {
			assert.True(t, s.CheckIn.IsBefore(s.CheckOut),
				"invariant violated after click %d: checkIn=%s checkOut=%s", i, s.CheckIn, s.CheckOut)
		}
	}
}

func TestRangeState_ReplayDeterminism(t *testing.T) {
	clicks := []types.DateString{
		"2024-05-10", "2024-05-15", "2024-05-05", "2024-05-20", "2024-04-01", "2024-05-07",
	}

	run := func() RangeState {
		s := NewRangeState()
		for _, d := range clicks {
			s = s.ClickDate(d, today)
		}
		return s
	}

	assert.Equal(t, run(), run())
}
