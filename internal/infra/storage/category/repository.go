package category

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий категорий номеров и ресторанов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRoomCategories возвращает все категории номеров
func (r *Repository) ListRoomCategories(ctx context.Context) ([]domain.RoomCategory, error) {
	query, args, err := psqlbuilder.Select("id", "name", "total_units", "color", "perks").
		From("room_categories").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRoomCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRoomCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]domain.RoomCategory, 0)
	for rows.Next() {
		var cat domain.RoomCategory
		// perks хранится колонкой text[]
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.TotalUnits, &cat.Color, pq.Array(&cat.Perks)); err != nil {
			return nil, fmt.Errorf("%w: ListRoomCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRoomCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ListRestaurants возвращает все рестораны
func (r *Repository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	query, args, err := psqlbuilder.Select("id", "name", "color").
		From("restaurants").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRestaurants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRestaurants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Color); err != nil {
			return nil, fmt.Errorf("%w: ListRestaurants - scan row: %v", ErrScanRow, err)
		}
		restaurants = append(restaurants, rest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRestaurants - rows error: %v", ErrScanRow, err)
	}

	return restaurants, nil
}
