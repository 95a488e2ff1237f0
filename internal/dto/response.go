package dto

import (
	"time"

	"github.com/saborgourmet/reservation-service/internal/models"
)

type ReservationResponse struct {
	ID        uint                     `json:"id"`
	Date      string                   `json:"date"`
	Time      string                   `json:"time"`
	PartySize int                      `json:"party_size"`
	Status    models.ReservationStatus `json:"status"`
	Customer  *CustomerResponse        `json:"customer,omitempty"`
	Table     *TableResponse           `json:"table,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

type CustomerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type TableResponse struct {
	ID       uint `json:"id"`
	Number   int  `json:"number"`
	Capacity int  `json:"capacity"`
	Active   bool `json:"active"`
}

type DashboardResponse struct {
	TotalTables       int                   `json:"total_tables"`
	ActiveTables      int                   `json:"active_tables"`
	TotalReservations int                   `json:"total_reservations"`
	ActiveToday       int                   `json:"active_today"`
	Today             []ReservationResponse `json:"today"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:        r.ID,
		Date:      r.Date,
		Time:      r.Time,
		PartySize: r.PartySize,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.Customer != nil {
		c := ToCustomerResponse(r.Customer)
		resp.Customer = &c
	}
	if r.Table != nil {
		t := ToTableResponse(r.Table)
		resp.Table = &t
	}
	return resp
}

func ToReservationResponses(reservations []models.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		resp[i] = ToReservationResponse(&reservations[i])
	}
	return resp
}

func ToCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

func ToTableResponse(t *models.Table) TableResponse {
	return TableResponse{
		ID:       t.ID,
		Number:   t.Number,
		Capacity: t.Capacity,
		Active:   t.Active,
	}
}
