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
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
	"github.com/tu-usuario/rental-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/rental-pro/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type rentalFixture struct {
	machinery repository.MachineryRepository
	finance   repository.FinancialRecordRepository
	uc        *usecase.RentalUseCase
}

func newRentalFixture(t *testing.T) *rentalFixture {
	t.Helper()
	f := &rentalFixture{
		machinery: memory.NewMachineryRepository(),
		finance:   memory.NewFinancialRecordRepository(),
	}
	f.uc = usecase.NewRentalUseCase(memory.NewRentalRepository(), f.machinery, f.finance, testLogger())
	return f
}

func (f *rentalFixture) addMachine(t *testing.T, status string) *entity.Machinery {
	t.Helper()
	m := &entity.Machinery{
		ID: "maq-1", Name: "Excavadora CAT 320D", SerialNumber: "CAT-001",
		Status: status, WarehouseID: "alm-1", CreatedAt: time.Now(),
	}
	require.NoError(t, f.machinery.Create(m))
	return m
}

func validRentalRequest() dto.CreateRentalRequest {
	return dto.CreateRentalRequest{
		ClientName:  "Constructora Andina SAC",
		MachineryID: "maq-1",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
		DailyRate:   decimal.NewFromFloat(350),
	}
}

// El monto total es días × tarifa, con el último día contando completo:
// del 1 al 5 de junio son 5 días facturables.
func TestRentalCreate_CalculaTotalConDiaFinalInclusivo(t *testing.T) {
	f := newRentalFixture(t)
	f.addMachine(t, entity.StatusDisponible)

	out, err := f.uc.Create(validRentalRequest())
	require.NoError(t, err)

	assert.Equal(t, "1750.00", out.TotalAmount.StringFixed(2), "5 días × 350.00")
	assert.Equal(t, entity.AlquilerActivo, out.Status)
}

// Un solo día (inicio == fin) factura un día completo.
func TestRentalCreate_UnSoloDia(t *testing.T) {
	f := newRentalFixture(t)
	f.addMachine(t, entity.StatusDisponible)

	in := validRentalRequest()
	in.EndDate = in.StartDate
	out, err := f.uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "350.00", out.TotalAmount.StringFixed(2))
}

// Crear el alquiler tiene dos efectos: la máquina pasa a alquilado y se emite
// el ingreso en finanzas vinculado a la máquina.
func TestRentalCreate_MarcaMaquinaYEmiteIngreso(t *testing.T) {
	f := newRentalFixture(t)
	m := f.addMachine(t, entity.StatusDisponible)

	out, err := f.uc.Create(validRentalRequest())
	require.NoError(t, err)

	updated, err := f.machinery.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAlquilado, updated.Status)

	records, err := f.finance.ListByRelated(entity.EntityRef{Kind: entity.KindMachinery, ID: m.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.FinanzasIngreso, records[0].Type)
	assert.Equal(t, "Alquiler", records[0].Category)
	assert.True(t, records[0].Amount.Equal(out.TotalAmount), "el ingreso registra el monto total del alquiler")
}

func TestRentalCreate_MaquinaNoDisponible(t *testing.T) {
	f := newRentalFixture(t)
	f.addMachine(t, entity.StatusMantenimiento)

	_, err := f.uc.Create(validRentalRequest())
	assert.ErrorIs(t, err, domain.ErrMachineryNotAvailable)
}

func TestRentalCreate_MaquinaInexistente(t *testing.T) {
	f := newRentalFixture(t)
	_, err := f.uc.Create(validRentalRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRentalCreate_ValidaEntrada(t *testing.T) {
	f := newRentalFixture(t)
	f.addMachine(t, entity.StatusDisponible)

	casos := map[string]func(*dto.CreateRentalRequest){
		"sin cliente":         func(r *dto.CreateRentalRequest) { r.ClientName = "" },
		"tarifa cero":         func(r *dto.CreateRentalRequest) { r.DailyRate = decimal.Zero },
		"tarifa negativa":     func(r *dto.CreateRentalRequest) { r.DailyRate = decimal.NewFromInt(-10) },
		"fin antes de inicio": func(r *dto.CreateRentalRequest) { r.EndDate = "2025-05-30" },
		"fecha malformada":    func(r *dto.CreateRentalRequest) { r.StartDate = "01/06/2025" },
		"sin fechas":          func(r *dto.CreateRentalRequest) { r.StartDate = ""; r.EndDate = "" },
	}
	for nombre, mutate := range casos {
		in := validRentalRequest()
		mutate(&in)
		_, err := f.uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
	}
}

// Completar un alquiler activo libera la máquina.
func TestRentalComplete_LiberaMaquina(t *testing.T) {
	f := newRentalFixture(t)
	m := f.addMachine(t, entity.StatusDisponible)

	out, err := f.uc.Create(validRentalRequest())
	require.NoError(t, err)
	require.NoError(t, f.uc.Complete(out.ID))

	r, err := f.uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AlquilerCompletado, r.Status)

	updated, err := f.machinery.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDisponible, updated.Status)
}

// Solo los alquileres activos se pueden completar o cancelar.
func TestRentalFinish_SoloActivos(t *testing.T) {
	f := newRentalFixture(t)
	f.addMachine(t, entity.StatusDisponible)

	out, err := f.uc.Create(validRentalRequest())
	require.NoError(t, err)
	require.NoError(t, f.uc.Cancel(out.ID))

	assert.ErrorIs(t, f.uc.Complete(out.ID), domain.ErrConflict, "cancelado no se puede completar")
	assert.ErrorIs(t, f.uc.Cancel(out.ID), domain.ErrConflict, "cancelar dos veces es conflicto")
	assert.ErrorIs(t, f.uc.Complete("no-existe"), domain.ErrNotFound)
}

func TestRentalListByStatus_EstadoInvalido(t *testing.T) {
	f := newRentalFixture(t)
	_, err := f.uc.ListByStatus("pendiente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
