package create_dining_reservation

import (
	"time"

	createDiningReservation "github.com/castelmar/CH-BookingService/internal/usecase/create_dining_reservation"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// CreateDiningReservationRequest HTTP request model
type CreateDiningReservationRequest struct {
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone string  `json:"guestPhone,omitempty"`
	Restaurant string  `json:"restaurant"`
	Date       string  `json:"date"`     // "2025-10-15"
	TimeSlot   string  `json:"timeSlot"` // "19:00"
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	Notes      *string `json:"notes,omitempty"`
}

// DiningReservationResponse HTTP response model
type DiningReservationResponse struct {
	ID         string  `json:"id"`
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone string  `json:"guestPhone"`
	Restaurant string  `json:"restaurant"`
	Date       string  `json:"date"`
	TimeSlot   string  `json:"timeSlot"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateDiningReservationRequest) ToUseCaseRequest() *createDiningReservation.Request {
	return &createDiningReservation.Request{
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		Restaurant: r.Restaurant,
		Date:       types.DateString(r.Date),
		TimeSlot:   types.TimeString(r.TimeSlot),
		Adults:     r.Adults,
		Children:   r.Children,
		Notes:      r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createDiningReservation.Response) *DiningReservationResponse {
	return &DiningReservationResponse{
		ID:         resp.ID,
		GuestName:  resp.GuestName,
		GuestEmail: resp.GuestEmail,
		GuestPhone: resp.GuestPhone,
		Restaurant: resp.Restaurant,
		Date:       resp.Date.String(),
		TimeSlot:   resp.TimeSlot.String(),
		Adults:     resp.Adults,
		Children:   resp.Children,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
