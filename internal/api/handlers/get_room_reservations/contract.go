package get_room_reservations

import (
	"context"

	"github.com/castelmar/CH-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListRoomReservations(ctx context.Context, req *models.ListRoomReservationsRequest) (*models.RoomReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
