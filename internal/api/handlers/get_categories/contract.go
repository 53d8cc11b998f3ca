package get_categories

import (
	"context"

	"github.com/castelmar/CH-BookingService/internal/service/categories/models"
)

type CategoryService interface {
	List(ctx context.Context) (*models.CategoriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
