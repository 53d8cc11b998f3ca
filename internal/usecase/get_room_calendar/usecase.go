package get_room_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/castelmar/CH-BookingService/internal/calendar"
	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/ptr"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// UseCase use case для получения календаря номеров на месяц
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

// Execute выполняет use case построения календаря номеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomCalendar: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	today := types.NewDateString(uc.timeProvider.Now())

	// 3. Загружаем реестр категорий
	registry, err := uc.categoryService.LoadRegistry(ctx)
	if err != nil {
		uc.logger.Error("GetRoomCalendar: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: failed to load categories: %v", ErrInternal, err)
	}

	// 4. Строим календарную сетку
	month := time.Month(req.Month)
	grid := calendar.BuildMonthGrid(req.Year, month)
	monthStart, monthEnd := calendar.MonthBounds(req.Year, month)

	// 5. Получаем бронирования, пересекающие месяц
	filter := domain.RoomReservationsFilter{
		StartDate: ptr.Ptr(monthStart),
		EndDate:   ptr.Ptr(monthEnd),
	}

	reservations, err := uc.reservationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetRoomCalendar: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 6. Строим индекс по дням
	index, skipped := calendar.IndexRoomReservations(reservations, req.Year, month)
	for _, s := range skipped {
		uc.logger.Warn("GetRoomCalendar: skipped reservation id=%s: %s", s.ReservationID, s.Reason)
	}

	// 7. Собираем ячейки ответа
	days := make([]Day, 0, len(grid))
	for _, cell := range grid {
		day := Day{
			Date:         cell.Date,
			InMonth:      cell.InMonth,
			IsToday:      cell.Date == today,
			IsPast:       cell.Date.IsBefore(today),
			Reservations: []DayReservation{},
		}

		// Ячейки-заполнители соседних месяцев остаются пустыми
		if cell.InMonth {
			for _, res := range index[cell.Date] {
				category, _ := registry.ResolveRoomCategory(res.RoomCategory)
				day.Reservations = append(day.Reservations, DayReservation{
					ID:           res.ID,
					GuestName:    res.GuestName,
					RoomCategory: res.RoomCategory,
					Color:        category.Color,
					CheckIn:      res.CheckIn,
					CheckOut:     res.CheckOut,
					IsArrival:    res.CheckIn == cell.Date,
					IsDeparture:  res.CheckOut == cell.Date,
				})
			}

			availability := calendar.ComputeRoomAvailability(registry.RoomCategories(), reservations, cell.Date)
			day.Availability = toDayAvailability(availability)
		}

		days = append(days, day)
	}

	uc.logger.Info("GetRoomCalendar: built %d cells for %d-%02d, %d reservations, %d skipped",
		len(days), req.Year, req.Month, len(reservations), len(skipped))

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Today: today,
		Days:  days,
	}, nil
}

// toDayAvailability конвертирует расчёт доступности в модель ответа
func toDayAvailability(availability calendar.RoomAvailability) *DayAvailability {
	out := &DayAvailability{
		Categories:     make([]CategoryAvailability, 0, len(availability.Categories)),
		TotalUnits:     availability.TotalUnits,
		TotalBooked:    availability.TotalBooked,
		TotalAvailable: availability.TotalAvailable,
	}
	for _, cat := range availability.Categories {
		out.Categories = append(out.Categories, CategoryAvailability{
			Name:       cat.Category.Name,
			Color:      cat.Category.Color,
			TotalUnits: cat.TotalUnits,
			Booked:     cat.Booked,
			Available:  cat.Available,
		})
	}
	return out
}
