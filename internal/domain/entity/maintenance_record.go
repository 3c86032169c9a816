package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de mantenimiento.
const (
	MantenimientoPreventivo = "preventivo"
	MantenimientoCorrectivo = "correctivo"
)

// MaintenanceRecord registra un servicio realizado a una máquina o vehículo:
// mano de obra, repuestos consumidos y la próxima fecha programada (si se fija,
// actualiza el NextMaintenance de la máquina).
type MaintenanceRecord struct {
	ID             string
	Entity         EntityRef // KindMachinery o KindVehicle
	EntityName     string
	Type           string // preventivo | correctivo
	Date           time.Time
	Description    string
	TechnicianName string
	LaborCost      decimal.Decimal
	SpareParts     []MaintenanceSparePart
	TotalCost      decimal.Decimal // LaborCost + Σ repuestos
	NextMaintenanceDate  *time.Time
	NextMaintenanceHours *int
	CreatedAt      time.Time
}

// MaintenanceSparePart repuesto consumido en un mantenimiento.
type MaintenanceSparePart struct {
	SparePartID   string
	SparePartName string
	Quantity      int
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
}
