package get_dining_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	getDiningCalendar "github.com/castelmar/CH-BookingService/internal/usecase/get_dining_calendar"
)

const (
	msgMissingYear   = "год обязателен"
	msgMissingMonth  = "месяц обязателен"
	msgInvalidYear   = "некорректный год"
	msgInvalidMonth  = "некорректный месяц, ожидается число от 1 до 12"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDiningCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetDiningCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/dining
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /calendar/dining - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /calendar/dining - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /calendar/dining - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /calendar/dining - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDiningCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getDiningCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/dining - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar/dining - Failed to build calendar: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar/dining - Calendar built successfully: year=%d, month=%d, cells=%d",
		year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
