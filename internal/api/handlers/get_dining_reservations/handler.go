package get_dining_reservations

import (
	"net/http"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
	"github.com/castelmar/CH-BookingService/internal/service/reservations/models"
	"github.com/castelmar/CH-BookingService/pkg/ptr"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/admin/reservations/dining
// Query params: date (YYYY-MM-DD), restaurant - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListDiningReservationsRequest{}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date := types.DateString(dateStr)
		if err := date.Validate(); err != nil {
			h.logger.Warn("GET /admin/reservations/dining - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	if restaurant := r.URL.Query().Get("restaurant"); restaurant != "" {
		req.Restaurant = ptr.Ptr(restaurant)
	}

	result, err := h.service.ListDiningReservations(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/reservations/dining - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations/dining - Reservations retrieved successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
