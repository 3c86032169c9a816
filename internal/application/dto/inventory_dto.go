package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSparePartRequest alta de repuesto con stock inicial por almacén.
type CreateSparePartRequest struct {
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Brand               string          `json:"brand"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	MinStock            int             `json:"min_stock"`
	StockByWarehouse    map[string]int  `json:"stock_by_warehouse"`
	CompatibleMachinery []string        `json:"compatible_machinery"`
	Suppliers           []string        `json:"suppliers"`
}

// SparePartResponse repuesto serializado con su clasificación de stock derivada.
type SparePartResponse struct {
	ID                  string          `json:"id"`
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	Brand               string          `json:"brand"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	MinStock            int             `json:"min_stock"`
	StockByWarehouse    map[string]int  `json:"stock_by_warehouse"`
	TotalStock          int             `json:"total_stock"`
	StockStatus         string          `json:"stock_status"` // sin_stock | stock_bajo | stock_normal | desconocido
	CompatibleMachinery []string        `json:"compatible_machinery"`
	Suppliers           []string        `json:"suppliers"`
	CreatedAt           time.Time       `json:"created_at"`
}

// AdjustStockRequest ajuste de stock de un repuesto en un almacén (delta con signo).
type AdjustStockRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Delta       int    `json:"delta"`
}

// CreateFuelRecordRequest registro de carga de combustible.
// TotalCost no se acepta del cliente: siempre se calcula como Liters × UnitCost.
type CreateFuelRecordRequest struct {
	EntityKind string          `json:"entity_kind"` // machinery | vehicle
	EntityID   string          `json:"entity_id"`
	Date       string          `json:"date"` // 2006-01-02
	Liters     decimal.Decimal `json:"liters"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Location   string          `json:"location"`
	Odometer   *int            `json:"odometer,omitempty"`
	Hourmeter  *int            `json:"hourmeter,omitempty"`
}

// FuelRecordResponse carga de combustible serializada.
type FuelRecordResponse struct {
	ID         string          `json:"id"`
	Entity     EntityRefDTO    `json:"entity"`
	EntityName string          `json:"entity_name"`
	Date       time.Time       `json:"date"`
	Liters     decimal.Decimal `json:"liters"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Location   string          `json:"location"`
	Odometer   *int            `json:"odometer,omitempty"`
	Hourmeter  *int            `json:"hourmeter,omitempty"`
}

// FuelStatsDTO acumulados de combustible sobre el conjunto consultado.
type FuelStatsDTO struct {
	TotalLiters decimal.Decimal `json:"total_liters"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Records     int             `json:"records"`
}
