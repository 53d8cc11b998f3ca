package get_room_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	getRoomCalendar "github.com/castelmar/CH-BookingService/internal/usecase/get_room_calendar"
)

const (
	msgMissingYear   = "год обязателен"
	msgMissingMonth  = "месяц обязателен"
	msgInvalidYear   = "некорректный год"
	msgInvalidMonth  = "некорректный месяц, ожидается число от 1 до 12"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetRoomCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/rooms
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /calendar/rooms - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /calendar/rooms - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /calendar/rooms - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /calendar/rooms - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getRoomCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/rooms - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar/rooms - Failed to build calendar: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar/rooms - Calendar built successfully: year=%d, month=%d, cells=%d",
		year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
