package get_room_availability

import (
	"context"
	"fmt"

	"github.com/castelmar/CH-BookingService/internal/calendar"
	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/ptr"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// UseCase use case для получения доступности номеров на дату
type UseCase struct {
	reservationRepo RoomReservationRepository
	categoryService CategoryService
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo RoomReservationRepository,
	categoryService CategoryService,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		categoryService: categoryService,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case расчёта доступности номеров.
//
// Доступность справочная: она не резервирует номера и не блокирует
// конкурентные бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomAvailability: date=%s", req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Пустая дата означает "на сегодня"
	targetDate := req.Date
	if targetDate == "" {
		targetDate = types.NewDateString(uc.timeProvider.Now())
	}

	// 3. Загружаем реестр категорий
	registry, err := uc.categoryService.LoadRegistry(ctx)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: failed to load categories: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования, занимающие целевую дату
	filter := domain.RoomReservationsFilter{
		StartDate: ptr.Ptr(targetDate),
		EndDate:   ptr.Ptr(targetDate),
	}

	reservations, err := uc.reservationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 5. Считаем занятость по категориям
	availability := calendar.ComputeRoomAvailability(registry.RoomCategories(), reservations, targetDate)

	if availability.UnknownCategoryBookings > 0 {
		uc.logger.Warn("GetRoomAvailability: %d reservations reference unknown categories on %s",
			availability.UnknownCategoryBookings, targetDate)
	}

	uc.logger.Info("GetRoomAvailability: date=%s, booked=%d/%d",
		targetDate, availability.TotalBooked, availability.TotalUnits)

	return toResponse(availability), nil
}

// toResponse конвертирует расчёт доступности в модель ответа
func toResponse(availability calendar.RoomAvailability) *Response {
	resp := &Response{
		Date:                    availability.Date,
		Categories:              make([]CategoryAvailability, 0, len(availability.Categories)),
		TotalUnits:              availability.TotalUnits,
		TotalBooked:             availability.TotalBooked,
		TotalAvailable:          availability.TotalAvailable,
		UnknownCategoryBookings: availability.UnknownCategoryBookings,
	}
	for _, cat := range availability.Categories {
		resp.Categories = append(resp.Categories, CategoryAvailability{
			Name:       cat.Category.Name,
			Color:      cat.Category.Color,
			Perks:      cat.Category.Perks,
			TotalUnits: cat.TotalUnits,
			Booked:     cat.Booked,
			Available:  cat.Available,
			IsFull:     cat.IsFull(),
		})
	}
	return resp
}
