package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/castelmar/CH-BookingService/internal/domain"
	diningRepo "github.com/castelmar/CH-BookingService/internal/infra/storage/diningreservation"
	roomRepo "github.com/castelmar/CH-BookingService/internal/infra/storage/roomreservation"
	"github.com/castelmar/CH-BookingService/internal/service/reservations/models"
)

// Service сервис администрирования бронирований
type Service struct {
	roomRepo   RoomReservationRepository
	diningRepo DiningReservationRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	roomRepo RoomReservationRepository,
	diningRepo DiningReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:   roomRepo,
		diningRepo: diningRepo,
		logger:     logger,
	}
}

// ListRoomReservations возвращает бронирования номеров для админки
func (s *Service) ListRoomReservations(ctx context.Context, req *models.ListRoomReservationsRequest) (*models.RoomReservationListResponse, error) {
	s.logger.Info("ListRoomReservations: start=%v, end=%v, category=%v", req.StartDate, req.EndDate, req.RoomCategory)

	filter := domain.RoomReservationsFilter{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		RoomCategory: req.RoomCategory,
	}

	list, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListRoomReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRoomReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRoomReservations: fetched %d reservations", len(list))
	return models.FromDomainRoomReservationList(list), nil
}

// DeleteRoomReservation удаляет бронирование номера по действию администратора
func (s *Service) DeleteRoomReservation(ctx context.Context, id string) error {
	s.logger.Info("DeleteRoomReservation: id=%s", id)

	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrReservationNotFound) {
			s.logger.Warn("DeleteRoomReservation: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("DeleteRoomReservation: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteRoomReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRoomReservation: deleted id=%s", id)
	return nil
}

// ListDiningReservations возвращает бронирования столиков для админки
func (s *Service) ListDiningReservations(ctx context.Context, req *models.ListDiningReservationsRequest) (*models.DiningReservationListResponse, error) {
	s.logger.Info("ListDiningReservations: date=%v, restaurant=%v", req.Date, req.Restaurant)

	filter := domain.DiningReservationsFilter{
		Date:       req.Date,
		Restaurant: req.Restaurant,
	}

	list, err := s.diningRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListDiningReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDiningReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDiningReservations: fetched %d reservations", len(list))
	return models.FromDomainDiningReservationList(list), nil
}

// DeleteDiningReservation удаляет бронирование столика
func (s *Service) DeleteDiningReservation(ctx context.Context, id string) error {
	s.logger.Info("DeleteDiningReservation: id=%s", id)

	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.diningRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, diningRepo.ErrReservationNotFound) {
			s.logger.Warn("DeleteDiningReservation: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("DeleteDiningReservation: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteDiningReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDiningReservation: deleted id=%s", id)
	return nil
}
