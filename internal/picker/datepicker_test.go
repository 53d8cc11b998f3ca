package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castelmar/CH-BookingService/pkg/types"
)

func TestDateState_Initial(t *testing.T) {
	s := NewDateState()
	assert.False(t, s.HasSelection())
}

func TestDateState_ClickSelects(t *testing.T) {
	s := NewDateState().ClickDate("2024-05-10", today)
	assert.Equal(t, types.DateString("2024-05-10"), s.SelectedDate)
	assert.True(t, s.HasSelection())
}

func TestDateState_ClickOverwrites(t *testing.T) {
	s := NewDateState().
		ClickDate("2024-05-10", today).
		ClickDate("2024-05-20", today)
	assert.Equal(t, types.DateString("2024-05-20"), s.SelectedDate)
}

func TestDateState_PastDateIgnored(t *testing.T) {
	s := NewDateState().ClickDate("2024-05-10", today)
	assert.Equal(t, s, s.ClickDate("2024-04-20", today))

	// Сегодняшний день выбрать можно
	assert.Equal(t, today, NewDateState().ClickDate(today, today).SelectedDate)
}

func TestDateState_Clear(t *testing.T) {
	s := NewDateState().
		ClickDate("2024-05-10", today).
		Clear()
	assert.False(t, s.HasSelection())
}
