package delete_dining_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	"github.com/castelmar/CH-BookingService/internal/service/reservations"
)

const (
	msgMissingReservationID = "идентификатор бронирования обязателен"
	msgReservationNotFound  = "бронирование не найдено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/reservations/dining/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]
	if reservationID == "" {
		h.logger.Warn("DELETE /admin/reservations/dining/{id} - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingReservationID)
		return
	}

	if err := h.service.DeleteDiningReservation(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations/dining/{id} - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/reservations/dining/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingReservationID)

		default:
			h.logger.Error("DELETE /admin/reservations/dining/{id} - Failed to delete reservation: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/dining/{id} - Reservation deleted successfully: id=%s", reservationID)
	handlers.RespondNoContent(w)
}
