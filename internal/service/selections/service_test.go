package selections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castelmar/CH-BookingService/internal/picker"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// fakeTimeProvider фиксированное время для тестов
type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

// nopLogger заглушка логгера
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(now time.Time) *Service {
	s := NewService(nopLogger{})
	s.timeProvider = &fakeTimeProvider{now: now}
	return s
}

var testNow = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.Local)

func TestService_DispatchStay_FullFlow(t *testing.T) {
	s := newTestService(testNow)

	state, err := s.DispatchStay("sess-1", ActionClickDate, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2024-05-10"), state.CheckIn)
	assert.Equal(t, picker.AwaitingCheckOut, state.Picking)

	state, err = s.DispatchStay("sess-1", ActionClickDate, "2024-05-15")
	require.NoError(t, err)
	assert.True(t, state.IsComplete())

	// Сессии изолированы друг от друга
	other, err := s.DispatchStay("sess-2", ActionClickDate, "2024-05-20")
	require.NoError(t, err)
	assert.False(t, other.IsComplete())

	state, err = s.DispatchStay("sess-1", ActionClear, "")
	require.NoError(t, err)
	assert.Equal(t, picker.NewRangeState(), state)
}

func TestService_DispatchStay_Validation(t *testing.T) {
	s := newTestService(testNow)

	_, err := s.DispatchStay("", ActionClear, "")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = s.DispatchStay("sess-1", "jump", "")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = s.DispatchStay("sess-1", ActionClickDate, "10.05.2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_DispatchStay_PastDateNoOp(t *testing.T) {
	s := newTestService(testNow)

	state, err := s.DispatchStay("sess-1", ActionClickDate, "2024-04-20")
	require.NoError(t, err)
	// Клик по прошедшей дате - не ошибка, состояние не меняется
	assert.Equal(t, picker.NewRangeState(), state)
}

func TestService_DispatchDining(t *testing.T) {
	s := newTestService(testNow)

	state, err := s.DispatchDining("sess-1", ActionClickDate, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2024-05-10"), state.SelectedDate)

	// Фокусные действия есть только у диапазонного пикера
	_, err = s.DispatchDining("sess-1", ActionFocusCheckIn, "")
	assert.ErrorIs(t, err, ErrInvalidAction)

	state, err = s.DispatchDining("sess-1", ActionClear, "")
	require.NoError(t, err)
	assert.False(t, state.HasSelection())
}

func TestService_PurgeIdle(t *testing.T) {
	s := newTestService(testNow)

	_, err := s.DispatchStay("old", ActionClickDate, "2024-05-10")
	require.NoError(t, err)

	// Сдвигаем время на час вперёд и трогаем вторую сессию
	s.timeProvider = &fakeTimeProvider{now: testNow.Add(time.Hour)}
	_, err = s.DispatchDining("fresh", ActionClickDate, "2024-05-10")
	require.NoError(t, err)

	purged := s.PurgeIdle(30 * time.Minute)
	assert.Equal(t, 1, purged)

	// Старая сессия начинается заново
	state, err := s.DispatchStay("old", ActionFocusCheckIn, "")
	require.NoError(t, err)
	assert.True(t, state.CheckIn.IsZero())
}
