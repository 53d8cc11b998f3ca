package models

import (
	"time"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// RoomReservationResponse модель бронирования номера для API
type RoomReservationResponse struct {
	ID           string  `json:"id"`
	GuestName    string  `json:"guestName"`
	GuestEmail   string  `json:"guestEmail"`
	GuestPhone   string  `json:"guestPhone"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	RoomCategory string  `json:"roomCategory"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// DiningReservationResponse модель бронирования столика для API
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

// RoomReservationListResponse список бронирований номеров
type RoomReservationListResponse struct {
	Reservations []RoomReservationResponse `json:"reservations"`
	Total        int                       `json:"total"`
}

// DiningReservationListResponse список бронирований столиков
type DiningReservationListResponse struct {
	Reservations []DiningReservationResponse `json:"reservations"`
	Total        int                         `json:"total"`
}

// ListRoomReservationsRequest запрос списка бронирований номеров
type ListRoomReservationsRequest struct {
	StartDate    *types.DateString
	EndDate      *types.DateString
	RoomCategory *string
}

// ListDiningReservationsRequest запрос списка бронирований столиков
type ListDiningReservationsRequest struct {
	Date       *types.DateString
	Restaurant *string
}

// FromDomainRoomReservation конвертирует доменную модель в API модель
func FromDomainRoomReservation(r *domain.RoomReservation) RoomReservationResponse {
	return RoomReservationResponse{
		ID:           r.ID,
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		GuestPhone:   r.GuestPhone,
		CheckIn:      r.CheckIn.String(),
		CheckOut:     r.CheckOut.String(),
		RoomCategory: r.RoomCategory,
		Adults:       r.Adults,
		Children:     r.Children,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainRoomReservationList конвертирует список доменных моделей
func FromDomainRoomReservationList(list []*domain.RoomReservation) *RoomReservationListResponse {
	resp := &RoomReservationListResponse{
		Reservations: make([]RoomReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, FromDomainRoomReservation(r))
	}
	return resp
}

// FromDomainDiningReservation конвертирует доменную модель в API модель
func FromDomainDiningReservation(r *domain.DiningReservation) DiningReservationResponse {
	return DiningReservationResponse{
		ID:         r.ID,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		Restaurant: r.Restaurant,
		Date:       r.Date.String(),
		TimeSlot:   r.TimeSlot.String(),
		Adults:     r.Adults,
		Children:   r.Children,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainDiningReservationList конвертирует список доменных моделей
func FromDomainDiningReservationList(list []*domain.DiningReservation) *DiningReservationListResponse {
	resp := &DiningReservationListResponse{
		Reservations: make([]DiningReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, FromDomainDiningReservation(r))
	}
	return resp
}
