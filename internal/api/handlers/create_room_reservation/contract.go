package create_room_reservation

import (
	"context"

	createRoomReservation "github.com/castelmar/CH-BookingService/internal/usecase/create_room_reservation"
)

type CreateRoomReservationUseCase interface {
	Execute(ctx context.Context, req *createRoomReservation.Request) (*createRoomReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
