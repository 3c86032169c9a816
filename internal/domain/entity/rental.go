package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un alquiler.
const (
	AlquilerActivo     = "activo"
	AlquilerCompletado = "completado"
	AlquilerCancelado  = "cancelado"
)

// Rental representa el alquiler de una máquina a un cliente por un rango de
// fechas a tarifa diaria.
type Rental struct {
	ID            string
	ClientName    string
	ClientContact string
	MachineryID   string
	MachineryName string
	StartDate     time.Time
	EndDate       time.Time
	DailyRate     decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        string
	Description   string
	CreatedAt     time.Time
}
