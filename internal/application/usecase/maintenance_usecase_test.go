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
)

type maintenanceFixture struct {
	machinery repository.MachineryRepository
	vehicles  repository.VehicleRepository
	parts     repository.SparePartRepository
	finance   repository.FinancialRecordRepository
	uc        *usecase.MaintenanceUseCase
}

func newMaintenanceFixture(t *testing.T) *maintenanceFixture {
	t.Helper()
	f := &maintenanceFixture{
		machinery: memory.NewMachineryRepository(),
		vehicles:  memory.NewVehicleRepository(),
		parts:     memory.NewSparePartRepository(),
		finance:   memory.NewFinancialRecordRepository(),
	}
	f.uc = usecase.NewMaintenanceUseCase(
		memory.NewMaintenanceRecordRepository(),
		f.machinery, f.vehicles, f.parts, f.finance, testLogger(),
	)
	return f
}

func (f *maintenanceFixture) addMachine(t *testing.T) *entity.Machinery {
	t.Helper()
	m := &entity.Machinery{
		ID: "maq-1", Name: "Retroexcavadora JCB 3CX", SerialNumber: "JCB-001",
		Status: entity.StatusDisponible, WarehouseID: "alm-1", CreatedAt: time.Now(),
	}
	require.NoError(t, f.machinery.Create(m))
	return m
}

func (f *maintenanceFixture) addPart(t *testing.T, id string, price float64, stock map[string]int) *entity.SparePart {
	t.Helper()
	p := &entity.SparePart{
		ID: id, Code: "COD-" + id, Name: "Repuesto " + id,
		UnitPrice: decimal.NewFromFloat(price), MinStock: 1,
		StockByWarehouse: stock, CreatedAt: time.Now(),
	}
	require.NoError(t, f.parts.Create(p))
	return p
}

func machineRequest() dto.CreateMaintenanceRequest {
	return dto.CreateMaintenanceRequest{
		EntityKind: string(entity.KindMachinery),
		EntityID:   "maq-1",
		Type:       entity.MantenimientoPreventivo,
		Date:       "2025-06-10",
		LaborCost:  decimal.NewFromFloat(200),
	}
}

// Registrar un servicio con repuestos descuenta el stock del almacén de la
// máquina y el total es mano de obra + repuestos.
func TestMaintenanceRegister_DescuentaStockYSumaTotal(t *testing.T) {
	f := newMaintenanceFixture(t)
	f.addMachine(t)
	f.addPart(t, "flt-1", 85.50, map[string]int{"alm-1": 10})

	in := machineRequest()
	in.SpareParts = []dto.MaintenanceSparePartDTO{{SparePartID: "flt-1", Quantity: 2}}

	out, err := f.uc.Register(in)
	require.NoError(t, err)

	// 200 + 2 × 85.50
	assert.Equal(t, "371.00", out.TotalCost.StringFixed(2))

	p, err := f.parts.GetByID("flt-1")
	require.NoError(t, err)
	assert.Equal(t, 8, p.StockByWarehouse["alm-1"])
}

// Stock insuficiente aborta el registro completo: ningún repuesto se descuenta
// aunque los anteriores de la lista sí tuvieran stock.
func TestMaintenanceRegister_StockInsuficiente_SinDescuentoParcial(t *testing.T) {
	f := newMaintenanceFixture(t)
	f.addMachine(t)
	f.addPart(t, "flt-1", 85.50, map[string]int{"alm-1": 10})
	f.addPart(t, "flt-2", 62, map[string]int{"alm-1": 1})

	in := machineRequest()
	in.SpareParts = []dto.MaintenanceSparePartDTO{
		{SparePartID: "flt-1", Quantity: 2},
		{SparePartID: "flt-2", Quantity: 5},
	}

	_, err := f.uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p1, _ := f.parts.GetByID("flt-1")
	assert.Equal(t, 10, p1.StockByWarehouse["alm-1"], "el primer repuesto no debe quedar descontado")
	p2, _ := f.parts.GetByID("flt-2")
	assert.Equal(t, 1, p2.StockByWarehouse["alm-1"])

	records, err := f.uc.List()
	require.NoError(t, err)
	assert.Empty(t, records, "el servicio no debe quedar registrado")
}

// El stock se descuenta del almacén de la máquina; stock en otro almacén no cuenta.
func TestMaintenanceRegister_StockEnOtroAlmacenNoCuenta(t *testing.T) {
	f := newMaintenanceFixture(t)
	f.addMachine(t) // alm-1
	f.addPart(t, "flt-1", 85.50, map[string]int{"alm-2": 50})

	in := machineRequest()
	in.SpareParts = []dto.MaintenanceSparePartDTO{{SparePartID: "flt-1", Quantity: 1}}

	_, err := f.uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Un servicio sobre maquinaria actualiza las fechas de mantenimiento de la
// máquina; la próxima fecha solo si viene en el registro.
func TestMaintenanceRegister_ActualizaFechasDeMaquina(t *testing.T) {
	f := newMaintenanceFixture(t)
	m := f.addMachine(t)

	in := machineRequest()
	in.NextMaintenanceDate = "2025-09-10"

	_, err := f.uc.Register(in)
	require.NoError(t, err)

	updated, err := f.machinery.GetByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastMaintenance)
	assert.Equal(t, "2025-06-10", updated.LastMaintenance.Format("2006-01-02"))
	require.NotNil(t, updated.NextMaintenance)
	assert.Equal(t, "2025-09-10", updated.NextMaintenance.Format("2006-01-02"))
}

// El egreso emitido en finanzas lleva el tipo de servicio como subcategoría y
// queda vinculado a la entidad mantenida.
func TestMaintenanceRegister_EmiteEgreso(t *testing.T) {
	f := newMaintenanceFixture(t)
	m := f.addMachine(t)

	out, err := f.uc.Register(machineRequest())
	require.NoError(t, err)

	records, err := f.finance.ListByRelated(entity.EntityRef{Kind: entity.KindMachinery, ID: m.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.FinanzasEgreso, records[0].Type)
	assert.Equal(t, "Mantenimiento", records[0].Category)
	assert.Equal(t, entity.MantenimientoPreventivo, records[0].Subcategory)
	assert.True(t, records[0].Amount.Equal(out.TotalCost))
}

// Para vehículos se registra el servicio pero no hay fechas de mantenimiento
// que actualizar; el nombre registrado es la placa.
func TestMaintenanceRegister_SobreVehiculo(t *testing.T) {
	f := newMaintenanceFixture(t)
	v := &entity.Vehicle{
		ID: "veh-1", Plate: "V7K-482", Status: entity.StatusDisponible,
		WarehouseID: "alm-1", CreatedAt: time.Now(),
	}
	require.NoError(t, f.vehicles.Create(v))

	in := machineRequest()
	in.EntityKind = string(entity.KindVehicle)
	in.EntityID = "veh-1"
	in.Type = entity.MantenimientoCorrectivo

	out, err := f.uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, "V7K-482", out.EntityName)
}

func TestMaintenanceRegister_ValidaEntrada(t *testing.T) {
	f := newMaintenanceFixture(t)
	f.addMachine(t)

	casos := map[string]func(*dto.CreateMaintenanceRequest){
		"tipo desconocido":   func(r *dto.CreateMaintenanceRequest) { r.Type = "general" },
		"costo negativo":     func(r *dto.CreateMaintenanceRequest) { r.LaborCost = decimal.NewFromInt(-1) },
		"sin fecha":          func(r *dto.CreateMaintenanceRequest) { r.Date = "" },
		"kind no mantenible": func(r *dto.CreateMaintenanceRequest) { r.EntityKind = string(entity.KindTool) },
		"cantidad cero": func(r *dto.CreateMaintenanceRequest) {
			r.SpareParts = []dto.MaintenanceSparePartDTO{{SparePartID: "flt-1", Quantity: 0}}
		},
	}
	for nombre, mutate := range casos {
		in := machineRequest()
		mutate(&in)
		_, err := f.uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
	}

	in := machineRequest()
	in.EntityID = "no-existe"
	_, err := f.uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un costo unitario explícito en el consumo pisa el precio de lista del repuesto.
func TestMaintenanceRegister_CostoUnitarioExplicito(t *testing.T) {
	f := newMaintenanceFixture(t)
	f.addMachine(t)
	f.addPart(t, "flt-1", 85.50, map[string]int{"alm-1": 5})

	in := machineRequest()
	in.LaborCost = decimal.Zero
	in.SpareParts = []dto.MaintenanceSparePartDTO{
		{SparePartID: "flt-1", Quantity: 2, UnitCost: decimal.NewFromFloat(70)},
	}

	out, err := f.uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, "140.00", out.TotalCost.StringFixed(2))
}
