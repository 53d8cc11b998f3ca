package get_room_availability

import (
	getRoomAvailability "github.com/castelmar/CH-BookingService/internal/usecase/get_room_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date                    string                         `json:"date"`
	Categories              []CategoryAvailabilityResponse `json:"categories"`
	TotalUnits              int                            `json:"totalUnits"`
	TotalBooked             int                            `json:"totalBooked"`
	TotalAvailable          int                            `json:"totalAvailable"`
	UnknownCategoryBookings int                            `json:"unknownCategoryBookings"`
}

// CategoryAvailabilityResponse доступность одной категории
type CategoryAvailabilityResponse struct {
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	Perks      []string `json:"perks"`
	TotalUnits int      `json:"totalUnits"`
	Booked     int      `json:"booked"`
	Available  int      `json:"available"`
	IsFull     bool     `json:"isFull"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:                    resp.Date.String(),
		Categories:              make([]CategoryAvailabilityResponse, 0, len(resp.Categories)),
		TotalUnits:              resp.TotalUnits,
		TotalBooked:             resp.TotalBooked,
		TotalAvailable:          resp.TotalAvailable,
		UnknownCategoryBookings: resp.UnknownCategoryBookings,
	}
	for _, cat := range resp.Categories {
		out.Categories = append(out.Categories, CategoryAvailabilityResponse{
			Name:       cat.Name,
			Color:      cat.Color,
			Perks:      cat.Perks,
			TotalUnits: cat.TotalUnits,
			Booked:     cat.Booked,
			Available:  cat.Available,
			IsFull:     cat.IsFull,
		})
	}
	return out
}
