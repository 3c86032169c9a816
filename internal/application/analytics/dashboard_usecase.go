// Package analytics contiene los casos de uso de resumen: los contadores de
// cabecera del dashboard y el reporte financiero mensual.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

// DashboardUseCase calcula los contadores de cabecera del panel.
//
// Todas las salidas son derivaciones puras sobre el snapshot actual: O(n)
// por colección, sin índices ni caché; recalcular en cada lectura es barato
// a esta escala.
type DashboardUseCase struct {
	machineryRepo repository.MachineryRepository
	vehicleRepo   repository.VehicleRepository
	toolRepo      repository.ToolRepository
	alertRepo     repository.AlertRepository
	financeRepo   repository.FinancialRecordRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	machineryRepo repository.MachineryRepository,
	vehicleRepo repository.VehicleRepository,
	toolRepo repository.ToolRepository,
	alertRepo repository.AlertRepository,
	financeRepo repository.FinancialRecordRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		machineryRepo: machineryRepo,
		vehicleRepo:   vehicleRepo,
		toolRepo:      toolRepo,
		alertRepo:     alertRepo,
		financeRepo:   financeRepo,
	}
}

// GetStats construye el DashboardStatsDTO para el instante now.
// El mes en curso es el mes calendario: [día 1 00:00, día 1 del mes
// siguiente) — inicio inclusivo, fin exclusivo.
func (uc *DashboardUseCase) GetStats(now time.Time) (*dto.DashboardStatsDTO, error) {
	machines, err := uc.machineryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar maquinaria: %w", err)
	}
	vehicles, err := uc.vehicleRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar vehículos: %w", err)
	}
	tools, err := uc.toolRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar herramientas: %w", err)
	}

	stats := &dto.DashboardStatsDTO{
		TotalMachinery: len(machines),
		TotalVehicles:  len(vehicles),
		TotalTools:     len(tools),
		DateLabel:      monthLabel(now),
	}
	for _, m := range machines {
		if m.Status == entity.StatusDisponible {
			stats.AvailableMachinery++
		}
	}
	for _, v := range vehicles {
		if v.Status == entity.StatusDisponible {
			stats.AvailableVehicles++
		}
	}
	for _, t := range tools {
		if t.Status == entity.ToolDisponible {
			stats.AvailableTools++
		}
	}

	critical, err := uc.alertRepo.CountUnresolved(entity.SeverityCritical)
	if err != nil {
		return nil, fmt.Errorf("dashboard: contar alertas críticas: %w", err)
	}
	stats.CriticalAlerts = critical

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	records, err := uc.financeRepo.ListByDateRange(monthStart, nextMonthStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", err)
	}

	revenue, expenses := decimal.Zero, decimal.Zero
	for _, r := range records {
		switch r.Type {
		case entity.FinanzasIngreso:
			revenue = revenue.Add(r.Amount)
		case entity.FinanzasEgreso:
			expenses = expenses.Add(r.Amount)
		}
	}
	stats.MonthlyRevenue = revenue.Round(2)
	stats.MonthlyExpenses = expenses.Round(2)
	stats.NetProfit = revenue.Sub(expenses).Round(2)

	return stats, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Septiembre 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
