package categories

import (
	"context"
	"fmt"

	"github.com/castelmar/CH-BookingService/internal/service/categories/models"
)

// Service сервис справочника категорий
type Service struct {
	repo   CategoryRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса категорий
func NewService(repo CategoryRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает справочник категорий номеров и ресторанов
func (s *Service) List(ctx context.Context) (*models.CategoriesResponse, error) {
	registry, err := s.LoadRegistry(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomain(registry.RoomCategories(), registry.Restaurants()), nil
}

// LoadRegistry загружает реестр категорий для резолва имён.
// Загружается один раз на запрос и передаётся во все вычисления.
func (s *Service) LoadRegistry(ctx context.Context) (*Registry, error) {
	rooms, err := s.repo.ListRoomCategories(ctx)
	if err != nil {
		s.logger.Error("LoadRegistry: failed to list room categories: %v", err)
		return nil, fmt.Errorf("%w: failed to list room categories: %v", ErrInternal, err)
	}

	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		s.logger.Error("LoadRegistry: failed to list restaurants: %v", err)
		return nil, fmt.Errorf("%w: failed to list restaurants: %v", ErrInternal, err)
	}

	return NewRegistry(rooms, restaurants), nil
}
