package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRentalRequest alta de alquiler. TotalAmount se calcula de la tarifa
// diaria y el rango de fechas; no se acepta del cliente.
type CreateRentalRequest struct {
	ClientName    string          `json:"client_name"`
	ClientContact string          `json:"client_contact"`
	MachineryID   string          `json:"machinery_id"`
	StartDate     string          `json:"start_date"` // 2006-01-02
	EndDate       string          `json:"end_date"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	Description   string          `json:"description"`
}

// RentalResponse alquiler serializado.
type RentalResponse struct {
	ID            string          `json:"id"`
	ClientName    string          `json:"client_name"`
	ClientContact string          `json:"client_contact"`
	MachineryID   string          `json:"machinery_id"`
	MachineryName string          `json:"machinery_name"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}
