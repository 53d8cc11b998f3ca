package get_dining_calendar

import (
	"context"
	"time"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/internal/service/categories"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// DiningReservationRepository интерфейс репозитория бронирований столиков
type DiningReservationRepository interface {
	// ListByMonth получает бронирования в диапазоне дат [start, end]
	ListByMonth(ctx context.Context, start, end types.DateString) ([]*domain.DiningReservation, error)
}

// CategoryService интерфейс сервиса справочника категорий
type CategoryService interface {
	LoadRegistry(ctx context.Context) (*categories.Registry, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
