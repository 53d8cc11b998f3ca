package create_dining_reservation

import (
	"errors"
	"net/http"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	createDiningReservation "github.com/castelmar/CH-BookingService/internal/usecase/create_dining_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDateInPast         = "дата бронирования не может быть в прошлом"
	msgInvalidTimeSlot    = "выбранное время не входит в доступные слоты"
	msgRestaurantNotFound = "ресторан не найден"
)

type Handler struct {
	useCase CreateDiningReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateDiningReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/dining
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDiningReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/dining - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createDiningReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations/dining - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createDiningReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations/dining - Invalid time slot: slot=%s", req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createDiningReservation.ErrRestaurantNotFound):
			h.logger.Warn("POST /reservations/dining - Restaurant not found: restaurant=%s", req.Restaurant)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createDiningReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/dining - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/dining - Failed to create reservation: guest=%s, error=%v",
				req.GuestName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations/dining - Reservation created successfully: id=%s, guest=%s, restaurant=%s",
		result.ID, result.GuestName, result.Restaurant)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
