package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

// MonthlyReportUseCase genera el reporte financiero de un mes calendario:
// totales, desglose por categoría y rentabilidad por máquina.
type MonthlyReportUseCase struct {
	financeRepo   repository.FinancialRecordRepository
	machineryRepo repository.MachineryRepository
}

// NewMonthlyReportUseCase construye el caso de uso.
func NewMonthlyReportUseCase(
	financeRepo repository.FinancialRecordRepository,
	machineryRepo repository.MachineryRepository,
) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{financeRepo: financeRepo, machineryRepo: machineryRepo}
}

// GetReport construye el reporte del mes indicado (mes 1-12).
func (uc *MonthlyReportUseCase) GetReport(year int, month time.Month, loc *time.Location) (*dto.MonthlyReportDTO, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("reporte mensual: mes inválido %d", month)
	}
	if loc == nil {
		loc = time.UTC
	}
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	records, err := uc.financeRepo.ListByDateRange(monthStart, nextMonthStart)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: movimientos: %w", err)
	}

	report := &dto.MonthlyReportDTO{
		Month:              monthLabel(monthStart),
		Year:               year,
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		IncomeByCategory:   map[string]decimal.Decimal{},
		ExpensesByCategory: map[string]decimal.Decimal{},
	}

	// Ingresos/egresos por máquina vía la referencia débil del movimiento
	incomeByMachine := map[string]decimal.Decimal{}
	expensesByMachine := map[string]decimal.Decimal{}

	for _, r := range records {
		switch r.Type {
		case entity.FinanzasIngreso:
			report.TotalIncome = report.TotalIncome.Add(r.Amount)
			report.IncomeByCategory[r.Category] = report.IncomeByCategory[r.Category].Add(r.Amount)
			if r.Related.Kind == entity.KindMachinery {
				incomeByMachine[r.Related.ID] = incomeByMachine[r.Related.ID].Add(r.Amount)
			}
		case entity.FinanzasEgreso:
			report.TotalExpenses = report.TotalExpenses.Add(r.Amount)
			report.ExpensesByCategory[r.Category] = report.ExpensesByCategory[r.Category].Add(r.Amount)
			if r.Related.Kind == entity.KindMachinery {
				expensesByMachine[r.Related.ID] = expensesByMachine[r.Related.ID].Add(r.Amount)
			}
		}
	}
	report.TotalIncome = report.TotalIncome.Round(2)
	report.TotalExpenses = report.TotalExpenses.Round(2)
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpenses).Round(2)

	machines, err := uc.machineryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: listar maquinaria: %w", err)
	}
	for _, m := range machines {
		income := incomeByMachine[m.ID]
		expenses := expensesByMachine[m.ID]
		if income.IsZero() && expenses.IsZero() {
			continue
		}
		report.MachineryProfitability = append(report.MachineryProfitability, dto.MachineryProfitDTO{
			MachineryID:   m.ID,
			MachineryName: m.Name,
			Income:        income.Round(2),
			Expenses:      expenses.Round(2),
			Profit:        income.Sub(expenses).Round(2),
		})
	}

	return report, nil
}
