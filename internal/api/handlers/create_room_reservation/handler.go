package create_room_reservation

import (
	"errors"
	"net/http"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	createRoomReservation "github.com/castelmar/CH-BookingService/internal/usecase/create_room_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDateRange   = "дата заезда должна быть раньше даты выезда"
	msgDateInPast         = "дата заезда не может быть в прошлом"
	msgCategoryNotFound   = "категория номера не найдена"
)

type Handler struct {
	useCase CreateRoomReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateRoomReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createRoomReservation.ErrInvalidDateRange):
			h.logger.Warn("POST /reservations/rooms - Invalid date range: checkIn=%s, checkOut=%s",
				req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createRoomReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations/rooms - Check-in in the past: checkIn=%s", req.CheckIn)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createRoomReservation.ErrCategoryNotFound):
			h.logger.Warn("POST /reservations/rooms - Category not found: category=%s", req.RoomCategory)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, createRoomReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/rooms - Failed to create reservation: guest=%s, error=%v",
				req.GuestName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations/rooms - Reservation created successfully: id=%s, guest=%s, category=%s",
		result.ID, result.GuestName, result.RoomCategory)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
