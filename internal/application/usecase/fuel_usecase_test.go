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

func newFuelFixture(t *testing.T) *usecase.FuelUseCase {
	t.Helper()
	machinery := memory.NewMachineryRepository()
	vehicles := memory.NewVehicleRepository()
	require.NoError(t, machinery.Create(&entity.Machinery{
		ID: "maq-1", Name: "Excavadora CAT 320D", SerialNumber: "CAT-001",
		Status: entity.StatusDisponible, WarehouseID: "alm-1", CreatedAt: time.Now(),
	}))
	require.NoError(t, vehicles.Create(&entity.Vehicle{
		ID: "veh-1", Plate: "V7K-482", Status: entity.StatusDisponible,
		WarehouseID: "alm-1", CreatedAt: time.Now(),
	}))
	return usecase.NewFuelUseCase(memory.NewFuelRecordRepository(), machinery, vehicles)
}

func fuelRequest() dto.CreateFuelRecordRequest {
	return dto.CreateFuelRecordRequest{
		EntityKind: string(entity.KindMachinery),
		EntityID:   "maq-1",
		Date:       "2025-06-10",
		Liters:     decimal.NewFromFloat(45.5),
		UnitCost:   decimal.NewFromFloat(4.85),
	}
}

// El costo total nunca se acepta del cliente: siempre es litros × costo
// unitario, redondeado a 2 decimales.
func TestFuelCreate_CalculaTotal(t *testing.T) {
	uc := newFuelFixture(t)

	out, err := uc.Create(fuelRequest())
	require.NoError(t, err)

	// 45.5 × 4.85 = 220.675 → 220.68
	assert.Equal(t, "220.68", out.TotalCost.StringFixed(2))
	assert.Equal(t, "Excavadora CAT 320D", out.EntityName, "el nombre se resuelve del snapshot de la máquina")
}

// Para vehículos el nombre registrado es la placa.
func TestFuelCreate_VehiculoUsaPlaca(t *testing.T) {
	uc := newFuelFixture(t)

	in := fuelRequest()
	in.EntityKind = string(entity.KindVehicle)
	in.EntityID = "veh-1"
	odometer := 84500
	in.Odometer = &odometer

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "V7K-482", out.EntityName)
	require.NotNil(t, out.Odometer)
	assert.Equal(t, 84500, *out.Odometer)
}

func TestFuelCreate_ValidaEntrada(t *testing.T) {
	uc := newFuelFixture(t)

	casos := map[string]func(*dto.CreateFuelRecordRequest){
		"litros cero":       func(r *dto.CreateFuelRecordRequest) { r.Liters = decimal.Zero },
		"litros negativos":  func(r *dto.CreateFuelRecordRequest) { r.Liters = decimal.NewFromInt(-5) },
		"costo cero":        func(r *dto.CreateFuelRecordRequest) { r.UnitCost = decimal.Zero },
		"sin fecha":         func(r *dto.CreateFuelRecordRequest) { r.Date = "" },
		"kind no abastible": func(r *dto.CreateFuelRecordRequest) { r.EntityKind = string(entity.KindSparePart) },
	}
	for nombre, mutate := range casos {
		in := fuelRequest()
		mutate(&in)
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
	}

	in := fuelRequest()
	in.EntityID = "no-existe"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFuelStats_AcumulaLitrosYCosto(t *testing.T) {
	uc := newFuelFixture(t)

	in := fuelRequest()
	_, err := uc.Create(in)
	require.NoError(t, err)

	in.Liters = decimal.NewFromFloat(30)
	in.UnitCost = decimal.NewFromFloat(5)
	_, err = uc.Create(in)
	require.NoError(t, err)

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, "75.5", stats.TotalLiters.String())
	// 220.68 + 150.00
	assert.Equal(t, "370.68", stats.TotalCost.StringFixed(2))
}

func TestFuelListByEntity_FiltraPorReferencia(t *testing.T) {
	uc := newFuelFixture(t)

	_, err := uc.Create(fuelRequest())
	require.NoError(t, err)

	in := fuelRequest()
	in.EntityKind = string(entity.KindVehicle)
	in.EntityID = "veh-1"
	_, err = uc.Create(in)
	require.NoError(t, err)

	items, err := uc.ListByEntity(string(entity.KindMachinery), "maq-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "maq-1", items[0].Entity.ID)

	_, err = uc.ListByEntity(string(entity.KindTool), "her-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
