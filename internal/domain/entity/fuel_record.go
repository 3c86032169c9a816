package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelRecord registra una carga de combustible para una máquina o vehículo.
// Invariante: TotalCost = Liters × UnitCost. Odometer aplica solo a vehículos
// y Hourmeter solo a maquinaria (snapshot del contador al momento de la carga).
type FuelRecord struct {
	ID         string
	Entity     EntityRef // KindMachinery o KindVehicle
	EntityName string
	Date       time.Time
	Liters     decimal.Decimal
	UnitCost   decimal.Decimal
	TotalCost  decimal.Decimal
	Location   string
	Odometer   *int
	Hourmeter  *int
	CreatedAt  time.Time
}
