package stay_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	"github.com/castelmar/CH-BookingService/internal/service/selections"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSession     = "некорректный идентификатор сессии"
	msgInvalidAction      = "неизвестное действие"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/stay-selection/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectionActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stay-selection/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.DispatchStay(sessionID, req.Action, types.DateString(req.Date))
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrInvalidSession):
			h.logger.Warn("POST /stay-selection/{id} - Invalid session id")
			handlers.RespondBadRequest(w, msgInvalidSession)

		case errors.Is(err, selections.ErrInvalidAction):
			h.logger.Warn("POST /stay-selection/{id} - Invalid action: %s", req.Action)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, selections.ErrInvalidDate):
			h.logger.Warn("POST /stay-selection/{id} - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /stay-selection/{id} - Failed to dispatch action: session=%s, action=%s, error=%v",
				sessionID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stay-selection/{id} - Action dispatched: session=%s, action=%s", sessionID, req.Action)
	handlers.RespondJSON(w, http.StatusOK, FromRangeState(state))
}
