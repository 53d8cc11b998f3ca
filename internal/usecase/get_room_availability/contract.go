package get_room_availability

import (
	"context"
	"time"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/internal/service/categories"
)

// RoomReservationRepository интерфейс репозитория бронирований номеров
type RoomReservationRepository interface {
	// List получает бронирования, пересекающиеся с периодом фильтра
	List(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.RoomReservation, error)
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
