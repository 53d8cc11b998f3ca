package create_room_reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// UseCase use case для создания бронирования номера
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

// Execute выполняет use case создания бронирования номера.
//
// Доступность номеров справочная: занятость категории на выбранные даты
// здесь не проверяется и от конкурентных бронирований не защищает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRoomReservation: guest=%s, category=%s, checkIn=%s, checkOut=%s",
		req.GuestName, req.RoomCategory, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRoomReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	today := types.NewDateString(uc.timeProvider.Now())

	// 3. Валидация диапазона дат
	if err := validateDates(req.CheckIn, req.CheckOut, today); err != nil {
		uc.logger.Warn("CreateRoomReservation: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем, что категория существует
	registry, err := uc.categoryService.LoadRegistry(ctx)
	if err != nil {
		uc.logger.Error("CreateRoomReservation: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: failed to load categories: %v", ErrInternal, err)
	}

	if _, ok := registry.ResolveRoomCategory(req.RoomCategory); !ok {
		uc.logger.Warn("CreateRoomReservation: category %q not found", req.RoomCategory)
		return nil, ErrCategoryNotFound
	}

	// 5. Создаем бронирование
	reservation := &domain.RoomReservation{
		GuestName:    strings.TrimSpace(req.GuestName),
		GuestEmail:   strings.TrimSpace(req.GuestEmail),
		GuestPhone:   strings.TrimSpace(req.GuestPhone),
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		RoomCategory: req.RoomCategory,
		Adults:       req.Adults,
		Children:     req.Children,
		Notes:        req.Notes,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateRoomReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateRoomReservation: successfully created reservation id=%s", created.ID)

	return &Response{
		ID:           created.ID,
		GuestName:    created.GuestName,
		GuestEmail:   created.GuestEmail,
		GuestPhone:   created.GuestPhone,
		CheckIn:      created.CheckIn,
		CheckOut:     created.CheckOut,
		RoomCategory: created.RoomCategory,
		Nights:       created.Nights(),
		Adults:       created.Adults,
		Children:     created.Children,
		Notes:        created.Notes,
		CreatedAt:    created.CreatedAt,
	}, nil
}
