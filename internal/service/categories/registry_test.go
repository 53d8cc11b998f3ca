package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castelmar/CH-BookingService/internal/domain"
)

func TestRegistry_ResolveRoomCategory(t *testing.T) {
	registry := NewRegistry(
		[]domain.RoomCategory{
			{ID: "1", Name: "Deluxe", TotalUnits: 3, Color: "#c0392b"},
		},
		nil,
	)

	cat, ok := registry.ResolveRoomCategory("Deluxe")
	assert.True(t, ok)
	assert.Equal(t, "#c0392b", cat.Color)

	// Неизвестное имя резолвится в определённую заглушку, а не в ошибку
	cat, ok = registry.ResolveRoomCategory("Penthouse")
	assert.False(t, ok)
	assert.Equal(t, domain.UnknownCategoryName, cat.Name)
	assert.Equal(t, domain.UnknownCategoryColor, cat.Color)
	assert.Zero(t, cat.TotalUnits)
}

func TestRegistry_ResolveRestaurant(t *testing.T) {
	registry := NewRegistry(nil, []domain.Restaurant{
		{ID: "1", Name: "Terrace", Color: "#2980b9"},
	})

	rest, ok := registry.ResolveRestaurant("Terrace")
	assert.True(t, ok)
	assert.Equal(t, "#2980b9", rest.Color)

	rest, ok = registry.ResolveRestaurant("Rooftop")
	assert.False(t, ok)
	assert.Equal(t, domain.UnknownCategoryName, rest.Name)
}
