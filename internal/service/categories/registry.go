package categories

import "github.com/castelmar/CH-BookingService/internal/domain"

// Registry is the single lookup point for category display metadata.
// Все представления (календарь клиента, админка, модалка бронирования)
// резолвят категории через него, вместо разбросанных по коду literal'ов.
type Registry struct {
	rooms       map[string]domain.RoomCategory
	restaurants map[string]domain.Restaurant
	roomList    []domain.RoomCategory
	restList    []domain.Restaurant
}

// NewRegistry builds a registry from the loaded category lists
func NewRegistry(rooms []domain.RoomCategory, restaurants []domain.Restaurant) *Registry {
	r := &Registry{
		rooms:       make(map[string]domain.RoomCategory, len(rooms)),
		restaurants: make(map[string]domain.Restaurant, len(restaurants)),
		roomList:    rooms,
		restList:    restaurants,
	}
	for _, c := range rooms {
		r.rooms[c.Name] = c
	}
	for _, rest := range restaurants {
		r.restaurants[rest.Name] = rest
	}
	return r
}

// ResolveRoomCategory looks up a room category by name. Unknown names get a
// defined fallback entry instead of failing: a reservation must stay visible
// on calendars even after its category was removed.
func (r *Registry) ResolveRoomCategory(name string) (domain.RoomCategory, bool) {
	if c, ok := r.rooms[name]; ok {
		return c, true
	}
	return domain.RoomCategory{
		Name:  domain.UnknownCategoryName,
		Color: domain.UnknownCategoryColor,
	}, false
}

// ResolveRestaurant looks up a restaurant by name with the same fallback rule
func (r *Registry) ResolveRestaurant(name string) (domain.Restaurant, bool) {
	if rest, ok := r.restaurants[name]; ok {
		return rest, true
	}
	return domain.Restaurant{
		Name:  domain.UnknownCategoryName,
		Color: domain.UnknownCategoryColor,
	}, false
}

// RoomCategories returns all room categories in load order
func (r *Registry) RoomCategories() []domain.RoomCategory {
	return r.roomList
}

// Restaurants returns all restaurants in load order
func (r *Registry) Restaurants() []domain.Restaurant {
	return r.restList
}
