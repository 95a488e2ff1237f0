package dto

type CreateReservationRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
	TableID       uint   `json:"table_id" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	PartySize     int    `json:"party_size" validate:"required,gte=1,lte=20"`
}

type UpdateReservationRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	PartySize  int    `json:"party_size"`
	Status     string `json:"status"`
	CustomerID uint   `json:"customer_id"`
	TableID    uint   `json:"table_id"`
}

type CreateTableRequest struct {
	Number   int   `json:"number" validate:"required,gt=0"`
	Capacity int   `json:"capacity" validate:"required,gt=0"`
	Active   *bool `json:"active"`
}

type SetTableActiveRequest struct {
	Active bool `json:"active"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}
