package models

import "github.com/castelmar/CH-BookingService/internal/domain"

// RoomCategoryResponse модель категории номера для API
type RoomCategoryResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	TotalUnits int      `json:"totalUnits"`
	Color      string   `json:"color"`
	Perks      []string `json:"perks"`
}

// RestaurantResponse модель ресторана для API
type RestaurantResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoriesResponse полный справочник категорий
type CategoriesResponse struct {
	RoomCategories []RoomCategoryResponse `json:"roomCategories"`
	Restaurants    []RestaurantResponse   `json:"restaurants"`
}

// FromDomain конвертирует доменные списки в API модель
func FromDomain(rooms []domain.RoomCategory, restaurants []domain.Restaurant) *CategoriesResponse {
	resp := &CategoriesResponse{
		RoomCategories: make([]RoomCategoryResponse, 0, len(rooms)),
		Restaurants:    make([]RestaurantResponse, 0, len(restaurants)),
	}
	for _, c := range rooms {
		resp.RoomCategories = append(resp.RoomCategories, RoomCategoryResponse{
			ID:         c.ID,
			Name:       c.Name,
			TotalUnits: c.TotalUnits,
			Color:      c.Color,
			Perks:      c.Perks,
		})
	}
	for _, r := range restaurants {
		resp.Restaurants = append(resp.Restaurants, RestaurantResponse{
			ID:    r.ID,
			Name:  r.Name,
			Color: r.Color,
		})
	}
	return resp
}
