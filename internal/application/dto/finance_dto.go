package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFinancialRecordRequest alta de movimiento financiero.
type CreateFinancialRecordRequest struct {
	Type        string          `json:"type"` // ingreso | egreso
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // 2006-01-02
	Related     EntityRefDTO    `json:"related_entity,omitempty"`
	IsRecurring bool            `json:"is_recurring,omitempty"`
}

// FinancialRecordResponse movimiento financiero serializado.
type FinancialRecordResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Related     EntityRefDTO    `json:"related_entity,omitempty"`
	IsRecurring bool            `json:"is_recurring"`
}

// FinanceSummaryDTO acumulados del listado filtrado (tarjetas de la vista de finanzas).
type FinanceSummaryDTO struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// ExpenseCategoryDTO categoría de gasto del catálogo.
type ExpenseCategoryDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Subcategories []string `json:"subcategories"`
}
