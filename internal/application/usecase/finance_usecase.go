package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

// Catálogo de categorías de gasto. Fijo por ahora; si algún día se vuelve
// editable pasa a su propio repositorio.
var expenseCategories = []entity.ExpenseCategory{
	{ID: "cat-mantenimiento", Name: "Mantenimiento", Type: entity.GastoVariable, Subcategories: []string{"Preventivo", "Correctivo", "Repuestos"}},
	{ID: "cat-combustible", Name: "Combustible", Type: entity.GastoVariable, Subcategories: []string{"Diesel", "Gasolina"}},
	{ID: "cat-planilla", Name: "Planilla", Type: entity.GastoFijo, Subcategories: []string{"Sueldos", "Beneficios"}},
	{ID: "cat-seguros", Name: "Seguros y documentos", Type: entity.GastoFijo, Subcategories: []string{"SOAT", "Revisión técnica", "Pólizas"}},
	{ID: "cat-imprevistos", Name: "Imprevistos", Type: entity.GastoInesperado, Subcategories: []string{"Reparaciones de emergencia", "Multas"}},
}

// FinanceUseCase casos de uso para movimientos financieros.
type FinanceUseCase struct {
	repo repository.FinancialRecordRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(repo repository.FinancialRecordRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo}
}

// Create registra un movimiento. El monto debe ser positivo; el signo lo da
// el tipo (ingreso | egreso), nunca el monto.
func (uc *FinanceUseCase) Create(in dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	if in.Type != entity.FinanzasIngreso && in.Type != entity.FinanzasEgreso {
		return nil, domain.ErrInvalidInput
	}
	if in.Category == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil || date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	related := refFromDTO(in.Related)
	if !related.IsZero() && !validEntityKind(related.Kind) {
		return nil, domain.ErrInvalidInput
	}
	r := &entity.FinancialRecord{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
		Related:     related,
		IsRecurring: in.IsRecurring,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toFinancialRecordResponse(r), nil
}

// List lista todos los movimientos.
func (uc *FinanceUseCase) List() ([]dto.FinancialRecordResponse, error) {
	return uc.toResponses(uc.repo.List())
}

// ListByMonth lista los movimientos del mes calendario [inicio, fin).
func (uc *FinanceUseCase) ListByMonth(year int, month time.Month, loc *time.Location) ([]dto.FinancialRecordResponse, error) {
	if month < time.January || month > time.December {
		return nil, domain.ErrInvalidInput
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)
	return uc.toResponses(uc.repo.ListByDateRange(from, to))
}

// Summary acumula ingresos, egresos y utilidad neta sobre el rango [from, to).
func (uc *FinanceUseCase) Summary(from, to time.Time) (*dto.FinanceSummaryDTO, error) {
	list, err := uc.repo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	income := decimal.Zero
	expenses := decimal.Zero
	for _, r := range list {
		switch r.Type {
		case entity.FinanzasIngreso:
			income = income.Add(r.Amount)
		case entity.FinanzasEgreso:
			expenses = expenses.Add(r.Amount)
		}
	}
	return &dto.FinanceSummaryDTO{
		TotalIncome:   income.Round(2),
		TotalExpenses: expenses.Round(2),
		NetProfit:     income.Sub(expenses).Round(2),
	}, nil
}

// ExpenseCategories devuelve el catálogo de categorías de gasto.
func (uc *FinanceUseCase) ExpenseCategories() []dto.ExpenseCategoryDTO {
	items := make([]dto.ExpenseCategoryDTO, 0, len(expenseCategories))
	for _, c := range expenseCategories {
		items = append(items, dto.ExpenseCategoryDTO{
			ID:            c.ID,
			Name:          c.Name,
			Type:          c.Type,
			Subcategories: c.Subcategories,
		})
	}
	return items
}

func (uc *FinanceUseCase) toResponses(list []*entity.FinancialRecord, err error) ([]dto.FinancialRecordResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.FinancialRecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toFinancialRecordResponse(r))
	}
	return items, nil
}

func toFinancialRecordResponse(r *entity.FinancialRecord) *dto.FinancialRecordResponse {
	return &dto.FinancialRecordResponse{
		ID:          r.ID,
		Type:        r.Type,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Related:     refToDTO(r.Related),
		IsRecurring: r.IsRecurring,
	}
}
