package get_dining_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/castelmar/CH-BookingService/internal/calendar"
	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/internal/service/categories"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// UseCase use case для получения календаря ресторанов на месяц
type UseCase struct {
	reservationRepo DiningReservationRepository
	categoryService CategoryService
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo DiningReservationRepository,
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

// Execute выполняет use case построения календаря ресторанов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDiningCalendar: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDiningCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	today := types.NewDateString(uc.timeProvider.Now())

	// 3. Загружаем реестр категорий
	registry, err := uc.categoryService.LoadRegistry(ctx)
	if err != nil {
		uc.logger.Error("GetDiningCalendar: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: failed to load categories: %v", ErrInternal, err)
	}

	// 4. Строим календарную сетку
	month := time.Month(req.Month)
	grid := calendar.BuildMonthGrid(req.Year, month)
	monthStart, monthEnd := calendar.MonthBounds(req.Year, month)

	// 5. Получаем бронирования столиков за месяц
	reservations, err := uc.reservationRepo.ListByMonth(ctx, monthStart, monthEnd)
	if err != nil {
		uc.logger.Error("GetDiningCalendar: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 6. Строим индекс по дням
	index, skipped := calendar.IndexDiningReservations(reservations, req.Year, month)
	for _, s := range skipped {
		uc.logger.Warn("GetDiningCalendar: skipped reservation id=%s: %s", s.ReservationID, s.Reason)
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
			Counts:       []RestaurantCount{},
		}

		// Ячейки-заполнители соседних месяцев остаются пустыми
		if cell.InMonth {
			dayReservations := index[cell.Date]
			for _, res := range dayReservations {
				restaurant, _ := registry.ResolveRestaurant(res.Restaurant)
				day.Reservations = append(day.Reservations, DayReservation{
					ID:         res.ID,
					GuestName:  res.GuestName,
					Restaurant: res.Restaurant,
					Color:      restaurant.Color,
					TimeSlot:   res.TimeSlot,
				})
			}
			day.Counts = countByRestaurant(registry, dayReservations, cell.Date)
		}

		days = append(days, day)
	}

	uc.logger.Info("GetDiningCalendar: built %d cells for %d-%02d, %d reservations, %d skipped",
		len(days), req.Year, req.Month, len(reservations), len(skipped))

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Today: today,
		Days:  days,
	}, nil
}

// countByRestaurant считает бронирования по ресторанам на дату.
// Рестораны без бронирований в счётчики не попадают.
func countByRestaurant(registry *categories.Registry, dayReservations []*domain.DiningReservation, date types.DateString) []RestaurantCount {
	counts := calendar.CountDiningReservations(dayReservations, date)

	out := make([]RestaurantCount, 0, len(counts))
	// Обходим в порядке справочника, чтобы порядок был стабильным
	for _, restaurant := range registry.Restaurants() {
		if n, ok := counts[restaurant.Name]; ok {
			out = append(out, RestaurantCount{Name: restaurant.Name, Color: restaurant.Color, Count: n})
			delete(counts, restaurant.Name)
		}
	}
	// Хвост: бронирования с неизвестным рестораном
	for name, n := range counts {
		restaurant, _ := registry.ResolveRestaurant(name)
		out = append(out, RestaurantCount{Name: name, Color: restaurant.Color, Count: n})
	}
	return out
}
