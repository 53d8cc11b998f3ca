package get_dining_reservations

import (
	"context"

	"github.com/castelmar/CH-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListDiningReservations(ctx context.Context, req *models.ListDiningReservationsRequest) (*models.DiningReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
