package create_dining_reservation

import (
	"context"

	createDiningReservation "github.com/castelmar/CH-BookingService/internal/usecase/create_dining_reservation"
)

type CreateDiningReservationUseCase interface {
	Execute(ctx context.Context, req *createDiningReservation.Request) (*createDiningReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
