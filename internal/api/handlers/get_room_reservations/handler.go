package get_room_reservations

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

// Handle GET /api/v1/admin/reservations/rooms
// Query params: startDate, endDate (YYYY-MM-DD), category - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRoomReservationsRequest{}

	if startStr := r.URL.Query().Get("startDate"); startStr != "" {
		start := types.DateString(startStr)
		if err := start.Validate(); err != nil {
			h.logger.Warn("GET /admin/reservations/rooms - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = ptr.Ptr(start)
	}

	if endStr := r.URL.Query().Get("endDate"); endStr != "" {
		end := types.DateString(endStr)
		if err := end.Validate(); err != nil {
			h.logger.Warn("GET /admin/reservations/rooms - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = ptr.Ptr(end)
	}

	if category := r.URL.Query().Get("category"); category != "" {
		req.RoomCategory = ptr.Ptr(category)
	}

	result, err := h.service.ListRoomReservations(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/reservations/rooms - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations/rooms - Reservations retrieved successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
