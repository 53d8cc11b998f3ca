package create_dining_reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// UseCase use case для создания бронирования столика
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

// Execute выполняет use case создания бронирования столика.
// Рестораны не имеют лимита столиков, поэтому проверки занятости нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDiningReservation: guest=%s, restaurant=%s, date=%s, slot=%s",
		req.GuestName, req.Restaurant, req.Date, req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateDiningReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	today := types.NewDateString(uc.timeProvider.Now())

	// 3. Валидация даты
	if err := validateDate(req.Date, today); err != nil {
		uc.logger.Warn("CreateDiningReservation: date validation failed: %v", err)
		return nil, err
	}

	// 4. Слот должен входить в фиксированный набор
	if !domain.IsValidDiningTimeSlot(req.TimeSlot) {
		uc.logger.Warn("CreateDiningReservation: time slot %s is not offered", req.TimeSlot)
		return nil, ErrInvalidTimeSlot
	}

	// 5. Проверяем, что ресторан существует
	registry, err := uc.categoryService.LoadRegistry(ctx)
	if err != nil {
		uc.logger.Error("CreateDiningReservation: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: failed to load categories: %v", ErrInternal, err)
	}

	if _, ok := registry.ResolveRestaurant(req.Restaurant); !ok {
		uc.logger.Warn("CreateDiningReservation: restaurant %q not found", req.Restaurant)
		return nil, ErrRestaurantNotFound
	}

	// 6. Создаем бронирование
	reservation := &domain.DiningReservation{
		GuestName:  strings.TrimSpace(req.GuestName),
		GuestEmail: strings.TrimSpace(req.GuestEmail),
		GuestPhone: strings.TrimSpace(req.GuestPhone),
		Restaurant: req.Restaurant,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Adults:     req.Adults,
		Children:   req.Children,
		Notes:      req.Notes,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateDiningReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateDiningReservation: successfully created reservation id=%s", created.ID)

	return &Response{
		ID:         created.ID,
		GuestName:  created.GuestName,
		GuestEmail: created.GuestEmail,
		GuestPhone: created.GuestPhone,
		Restaurant: created.Restaurant,
		Date:       created.Date,
		TimeSlot:   created.TimeSlot,
		Adults:     created.Adults,
		Children:   created.Children,
		Notes:      created.Notes,
		CreatedAt:  created.CreatedAt,
	}, nil
}
