package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento financiero.
const (
	FinanzasIngreso = "ingreso"
	FinanzasEgreso  = "egreso"
)

// Tipos de categoría de gasto.
const (
	GastoFijo       = "fijo"
	GastoVariable   = "variable"
	GastoInesperado = "inesperado"
)

// FinancialRecord movimiento de ingreso o egreso con categoría y
// referencia opcional a la entidad que lo originó (alquiler, mantenimiento,
// combustible).
type FinancialRecord struct {
	ID          string
	Type        string // ingreso | egreso
	Category    string
	Subcategory string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Related     EntityRef // opcional; IsZero() si no aplica
	IsRecurring bool
	CreatedAt   time.Time
}

// ExpenseCategory categoría de gasto con sus subcategorías (catálogo).
type ExpenseCategory struct {
	ID            string
	Name          string
	Type          string // fijo | variable | inesperado
	Subcategories []string
}
