package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats: los contadores de
// cabecera del panel. Todo es derivado en el momento; nada se cachea.
type DashboardStatsDTO struct {
	TotalMachinery     int `json:"total_machinery"`
	AvailableMachinery int `json:"available_machinery"`
	TotalVehicles      int `json:"total_vehicles"`
	AvailableVehicles  int `json:"available_vehicles"`
	TotalTools         int `json:"total_tools"`
	AvailableTools     int `json:"available_tools"`

	// Alertas no resueltas con severidad critical
	CriticalAlerts int `json:"critical_alerts"`

	// Mes calendario en curso: [día 1, día 1 del mes siguiente)
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	NetProfit       decimal.Decimal `json:"net_profit"` // siempre recalculado, nunca almacenado

	DateLabel string `json:"date_label"` // ej: "Septiembre 2026"
}

// MachineryProfitDTO rentabilidad de una máquina en el período del reporte.
type MachineryProfitDTO struct {
	MachineryID   string          `json:"machinery_id"`
	MachineryName string          `json:"machinery_name"`
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
}

// MonthlyReportDTO reporte financiero de un mes calendario.
type MonthlyReportDTO struct {
	Month                  string                     `json:"month"`
	Year                   int                        `json:"year"`
	TotalIncome            decimal.Decimal            `json:"total_income"`
	TotalExpenses          decimal.Decimal            `json:"total_expenses"`
	NetProfit              decimal.Decimal            `json:"net_profit"`
	IncomeByCategory       map[string]decimal.Decimal `json:"income_by_category"`
	ExpensesByCategory     map[string]decimal.Decimal `json:"expenses_by_category"`
	MachineryProfitability []MachineryProfitDTO       `json:"machinery_profitability"`
}
