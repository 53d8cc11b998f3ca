package create_room_reservation

import (
	"time"

	createRoomReservation "github.com/castelmar/CH-BookingService/internal/usecase/create_room_reservation"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// CreateRoomReservationRequest HTTP request model
type CreateRoomReservationRequest struct {
	GuestName    string  `json:"guestName"`
	GuestEmail   string  `json:"guestEmail"`
	GuestPhone   string  `json:"guestPhone,omitempty"`
	CheckIn      string  `json:"checkIn"`  // "2025-10-15"
	CheckOut     string  `json:"checkOut"` // "2025-10-18"
	RoomCategory string  `json:"roomCategory"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Notes        *string `json:"notes,omitempty"`
}

// RoomReservationResponse HTTP response model
type RoomReservationResponse struct {
	ID           string  `json:"id"`
	GuestName    string  `json:"guestName"`
	GuestEmail   string  `json:"guestEmail"`
	GuestPhone   string  `json:"guestPhone"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	RoomCategory string  `json:"roomCategory"`
	Nights       int     `json:"nights"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRoomReservationRequest) ToUseCaseRequest() *createRoomReservation.Request {
	return &createRoomReservation.Request{
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		GuestPhone:   r.GuestPhone,
		CheckIn:      types.DateString(r.CheckIn),
		CheckOut:     types.DateString(r.CheckOut),
		RoomCategory: r.RoomCategory,
		Adults:       r.Adults,
		Children:     r.Children,
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRoomReservation.Response) *RoomReservationResponse {
	return &RoomReservationResponse{
		ID:           resp.ID,
		GuestName:    resp.GuestName,
		GuestEmail:   resp.GuestEmail,
		GuestPhone:   resp.GuestPhone,
		CheckIn:      resp.CheckIn.String(),
		CheckOut:     resp.CheckOut.String(),
		RoomCategory: resp.RoomCategory,
		Nights:       resp.Nights,
		Adults:       resp.Adults,
		Children:     resp.Children,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
