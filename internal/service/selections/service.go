package selections

import (
	"sync"
	"time"

	"github.com/castelmar/CH-BookingService/internal/picker"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// Действия пикеров. Клиент шлёт их как события на сессию выбора дат.
const (
	ActionClickDate     = "date_clicked"
	ActionClear         = "clear"
	ActionFocusCheckIn  = "focus_check_in"
	ActionFocusCheckOut = "focus_check_out"
)

type stayEntry struct {
	state     picker.RangeState
	touchedAt time.Time
}

type diningEntry struct {
	state     picker.DateState
	touchedAt time.Time
}

// Service holds the per-session picker state for the booking modals.
// Состояние живёт только в памяти процесса: сессия выбора дат привязана к
// открытой модалке на клиенте и не переживает её закрытие (действие clear)
// или простой (PurgeIdle).
type Service struct {
	mu           sync.Mutex
	stays        map[string]stayEntry
	dining       map[string]diningEntry
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий выбора дат
func NewService(logger Logger) *Service {
	return &Service{
		stays:        make(map[string]stayEntry),
		dining:       make(map[string]diningEntry),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// DispatchStay applies an action to the range-picker session and returns the
// resulting state. Неизвестная сессия начинается с начального состояния.
func (s *Service) DispatchStay(sessionID, action string, date types.DateString) (picker.RangeState, error) {
	if sessionID == "" {
		return picker.RangeState{}, ErrInvalidSession
	}

	now := s.timeProvider.Now()
	today := types.NewDateString(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.stays[sessionID]
	if !ok {
		entry = stayEntry{state: picker.NewRangeState()}
	}

	switch action {
	case ActionClickDate:
		if date.Validate() != nil {
			return picker.RangeState{}, ErrInvalidDate
		}
		entry.state = entry.state.ClickDate(date, today)
	case ActionClear:
		entry.state = entry.state.Clear()
	case ActionFocusCheckIn:
		entry.state = entry.state.FocusCheckIn()
	case ActionFocusCheckOut:
		entry.state = entry.state.FocusCheckOut()
	default:
		return picker.RangeState{}, ErrInvalidAction
	}

	entry.touchedAt = now
	s.stays[sessionID] = entry

	s.logger.Info("DispatchStay: session=%s action=%s -> checkIn=%s checkOut=%s picking=%s",
		sessionID, action, entry.state.CheckIn, entry.state.CheckOut, entry.state.Picking)
	return entry.state, nil
}

// DispatchDining applies an action to the single-date picker session
func (s *Service) DispatchDining(sessionID, action string, date types.DateString) (picker.DateState, error) {
	if sessionID == "" {
		return picker.DateState{}, ErrInvalidSession
	}

	now := s.timeProvider.Now()
	today := types.NewDateString(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.dining[sessionID]
	if !ok {
		entry = diningEntry{state: picker.NewDateState()}
	}

	switch action {
	case ActionClickDate:
		if date.Validate() != nil {
			return picker.DateState{}, ErrInvalidDate
		}
		entry.state = entry.state.ClickDate(date, today)
	case ActionClear:
		entry.state = entry.state.Clear()
	default:
		return picker.DateState{}, ErrInvalidAction
	}

	entry.touchedAt = now
	s.dining[sessionID] = entry

	s.logger.Info("DispatchDining: session=%s action=%s -> selected=%s",
		sessionID, action, entry.state.SelectedDate)
	return entry.state, nil
}

// PurgeIdle drops sessions untouched for longer than maxIdle.
// Вызывается периодически из фонового тикера в main.
func (s *Service) PurgeIdle(maxIdle time.Duration) int {
	now := s.timeProvider.Now()
	cutoff := now.Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, entry := range s.stays {
		if entry.touchedAt.Before(cutoff) {
			delete(s.stays, id)
			purged++
		}
	}
	for id, entry := range s.dining {
		if entry.touchedAt.Before(cutoff) {
			delete(s.dining, id)
			purged++
		}
	}

	if purged > 0 {
		s.logger.Info("PurgeIdle: dropped %d idle picker sessions", purged)
	}
	return purged
}
