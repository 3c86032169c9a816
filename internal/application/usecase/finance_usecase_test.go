package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/infrastructure/memory"
)

func newFinanceUC() *usecase.FinanceUseCase {
	return usecase.NewFinanceUseCase(memory.NewFinancialRecordRepository())
}

func financeRequest(recordType, date string, amount float64) dto.CreateFinancialRecordRequest {
	return dto.CreateFinancialRecordRequest{
		Type:     recordType,
		Category: "Alquiler",
		Amount:   decimal.NewFromFloat(amount),
		Date:     date,
	}
}

func TestFinanceCreate_ValidaEntrada(t *testing.T) {
	uc := newFinanceUC()

	casos := map[string]dto.CreateFinancialRecordRequest{
		"tipo desconocido": financeRequest("transferencia", "2025-06-10", 100),
		"monto cero":       financeRequest(entity.FinanzasIngreso, "2025-06-10", 0),
		"monto negativo":   financeRequest(entity.FinanzasEgreso, "2025-06-10", -50),
		"sin fecha":        financeRequest(entity.FinanzasIngreso, "", 100),
	}
	for nombre, in := range casos {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
	}

	sinCategoria := financeRequest(entity.FinanzasIngreso, "2025-06-10", 100)
	sinCategoria.Category = ""
	_, err := uc.Create(sinCategoria)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	conRefInvalida := financeRequest(entity.FinanzasEgreso, "2025-06-10", 100)
	conRefInvalida.Related = dto.EntityRefDTO{Kind: "cliente", ID: "x"}
	_, err = uc.Create(conRefInvalida)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El mes calendario es [día 1, día 1 del mes siguiente): un movimiento del
// primer día entra, uno del primer día del mes siguiente no.
func TestFinanceListByMonth_LimitesDelMes(t *testing.T) {
	uc := newFinanceUC()

	for _, date := range []string{"2025-05-31", "2025-06-01", "2025-06-30", "2025-07-01"} {
		_, err := uc.Create(financeRequest(entity.FinanzasIngreso, date, 100))
		require.NoError(t, err)
	}

	items, err := uc.ListByMonth(2025, time.June, time.UTC)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, r := range items {
		assert.Equal(t, time.June, r.Date.Month())
	}
}

func TestFinanceSummary_UtilidadNetaExacta(t *testing.T) {
	uc := newFinanceUC()

	_, err := uc.Create(financeRequest(entity.FinanzasIngreso, "2025-06-05", 1750.00))
	require.NoError(t, err)
	_, err = uc.Create(financeRequest(entity.FinanzasIngreso, "2025-06-12", 980.50))
	require.NoError(t, err)
	egreso := financeRequest(entity.FinanzasEgreso, "2025-06-20", 371.10)
	egreso.Category = "Mantenimiento"
	_, err = uc.Create(egreso)
	require.NoError(t, err)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out, err := uc.Summary(from, from.AddDate(0, 1, 0))
	require.NoError(t, err)

	// Aritmética decimal exacta: sin deriva de flotantes.
	assert.Equal(t, "2730.50", out.TotalIncome.StringFixed(2))
	assert.Equal(t, "371.10", out.TotalExpenses.StringFixed(2))
	assert.Equal(t, "2359.40", out.NetProfit.StringFixed(2))
}

func TestFinanceExpenseCategories_CatalogoCompleto(t *testing.T) {
	uc := newFinanceUC()
	cats := uc.ExpenseCategories()
	require.Len(t, cats, 5)

	byName := map[string]dto.ExpenseCategoryDTO{}
	for _, c := range cats {
		byName[c.Name] = c
	}
	assert.Equal(t, entity.GastoVariable, byName["Mantenimiento"].Type)
	assert.Equal(t, entity.GastoVariable, byName["Combustible"].Type)
	assert.Equal(t, entity.GastoFijo, byName["Planilla"].Type)
	assert.Equal(t, entity.GastoFijo, byName["Seguros y documentos"].Type)
	assert.Equal(t, entity.GastoInesperado, byName["Imprevistos"].Type)
	assert.Contains(t, byName["Mantenimiento"].Subcategories, "Preventivo")
}
