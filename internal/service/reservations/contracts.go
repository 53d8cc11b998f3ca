package reservations

import (
	"context"

	"github.com/castelmar/CH-BookingService/internal/domain"
)

// RoomReservationRepository интерфейс репозитория бронирований номеров
type RoomReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.RoomReservation, error)
	List(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.RoomReservation, error)
	Delete(ctx context.Context, id string) error
}

// DiningReservationRepository интерфейс репозитория бронирований столиков
type DiningReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.DiningReservation, error)
	List(ctx context.Context, filter domain.DiningReservationsFilter) ([]*domain.DiningReservation, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
