package get_room_availability

import (
	"errors"
	"net/http"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	getRoomAvailability "github.com/castelmar/CH-BookingService/internal/usecase/get_room_availability"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	useCase GetRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/rooms
// Query params: date (optional, YYYY-MM-DD; по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getRoomAvailability.Request{Date: types.DateString(dateStr)})
	if err != nil {
		switch {
		case errors.Is(err, getRoomAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/rooms - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/rooms - Failed to compute availability: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/rooms - Availability computed successfully: date=%s, available=%d/%d",
		result.Date, result.TotalAvailable, result.TotalUnits)
	handlers.RespondJSON(w, http.StatusOK, response)
}
