package categories

import (
	"context"

	"github.com/castelmar/CH-BookingService/internal/domain"
)

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	ListRoomCategories(ctx context.Context) ([]domain.RoomCategory, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
