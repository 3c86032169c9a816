package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceSparePartDTO repuesto consumido en un servicio.
type MaintenanceSparePartDTO struct {
	SparePartID string          `json:"spare_part_id"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost,omitempty"` // vacío = precio unitario del repuesto
}

// CreateMaintenanceRequest registro de un servicio de mantenimiento.
// Los repuestos consumidos descuentan stock del almacén de la máquina.
type CreateMaintenanceRequest struct {
	EntityKind           string                    `json:"entity_kind"` // machinery | vehicle
	EntityID             string                    `json:"entity_id"`
	Type                 string                    `json:"type"` // preventivo | correctivo
	Date                 string                    `json:"date"` // 2006-01-02
	Description          string                    `json:"description"`
	TechnicianName       string                    `json:"technician_name"`
	LaborCost            decimal.Decimal           `json:"labor_cost"`
	SpareParts           []MaintenanceSparePartDTO `json:"spare_parts,omitempty"`
	NextMaintenanceDate  string                    `json:"next_maintenance_date,omitempty"`
	NextMaintenanceHours *int                      `json:"next_maintenance_hours,omitempty"`
}

// MaintenanceRecordResponse servicio serializado.
type MaintenanceRecordResponse struct {
	ID             string          `json:"id"`
	Entity         EntityRefDTO    `json:"entity"`
	EntityName     string          `json:"entity_name"`
	Type           string          `json:"type"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	TechnicianName string          `json:"technician_name"`
	LaborCost      decimal.Decimal `json:"labor_cost"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
