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

func newSparePartUC(t *testing.T) *usecase.SparePartUseCase {
	t.Helper()
	warehouses := memory.NewWarehouseRepository()
	require.NoError(t, warehouses.Create(&entity.Warehouse{
		ID: "alm-1", Name: "Almacén Central", CreatedAt: time.Now(),
	}))
	return usecase.NewSparePartUseCase(memory.NewSparePartRepository(), warehouses)
}

func sparePartRequest(code string) dto.CreateSparePartRequest {
	return dto.CreateSparePartRequest{
		Code:             code,
		Name:             "Filtro de aceite",
		UnitPrice:        decimal.NewFromFloat(85.50),
		MinStock:         4,
		StockByWarehouse: map[string]int{"alm-1": 10},
	}
}

func TestSparePartCreate_CodigoUnico(t *testing.T) {
	uc := newSparePartUC(t)

	_, err := uc.Create(sparePartRequest("REP-001"))
	require.NoError(t, err)

	_, err = uc.Create(sparePartRequest("REP-001"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSparePartCreate_AlmacenDebeExistir(t *testing.T) {
	uc := newSparePartUC(t)

	in := sparePartRequest("REP-002")
	in.StockByWarehouse = map[string]int{"alm-fantasma": 5}
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSparePartCreate_ValidaEntrada(t *testing.T) {
	uc := newSparePartUC(t)

	casos := map[string]func(*dto.CreateSparePartRequest){
		"sin código":       func(r *dto.CreateSparePartRequest) { r.Code = "" },
		"sin nombre":       func(r *dto.CreateSparePartRequest) { r.Name = "" },
		"mínimo negativo":  func(r *dto.CreateSparePartRequest) { r.MinStock = -1 },
		"precio negativo":  func(r *dto.CreateSparePartRequest) { r.UnitPrice = decimal.NewFromInt(-1) },
		"stock negativo":   func(r *dto.CreateSparePartRequest) { r.StockByWarehouse = map[string]int{"alm-1": -3} },
	}
	for nombre, mutate := range casos {
		in := sparePartRequest("REP-X")
		mutate(&in)
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
	}
}

// La respuesta lleva la clasificación de stock derivada del total multi-almacén.
func TestSparePartList_ClasificaStock(t *testing.T) {
	uc := newSparePartUC(t)

	normal, err := uc.Create(sparePartRequest("REP-OK"))
	require.NoError(t, err)
	assert.Equal(t, "stock_normal", normal.StockStatus)
	assert.Equal(t, 10, normal.TotalStock)

	bajo := sparePartRequest("REP-BAJO")
	bajo.StockByWarehouse = map[string]int{"alm-1": 3}
	outBajo, err := uc.Create(bajo)
	require.NoError(t, err)
	assert.Equal(t, "stock_bajo", outBajo.StockStatus)

	cero := sparePartRequest("REP-CERO")
	cero.StockByWarehouse = map[string]int{}
	outCero, err := uc.Create(cero)
	require.NoError(t, err)
	assert.Equal(t, "sin_stock", outCero.StockStatus)
}

func TestSparePartAdjustStock_AplicaDelta(t *testing.T) {
	uc := newSparePartUC(t)
	created, err := uc.Create(sparePartRequest("REP-ADJ"))
	require.NoError(t, err)

	out, err := uc.AdjustStock(created.ID, dto.AdjustStockRequest{WarehouseID: "alm-1", Delta: -4})
	require.NoError(t, err)
	assert.Equal(t, 6, out.StockByWarehouse["alm-1"])

	out, err = uc.AdjustStock(created.ID, dto.AdjustStockRequest{WarehouseID: "alm-1", Delta: 10})
	require.NoError(t, err)
	assert.Equal(t, 16, out.StockByWarehouse["alm-1"])
}

// El stock por almacén nunca baja de cero: el ajuste que lo dejaría negativo
// se rechaza sin aplicar nada.
func TestSparePartAdjustStock_NuncaNegativo(t *testing.T) {
	uc := newSparePartUC(t)
	created, err := uc.Create(sparePartRequest("REP-NEG"))
	require.NoError(t, err)

	_, err = uc.AdjustStock(created.ID, dto.AdjustStockRequest{WarehouseID: "alm-1", Delta: -11})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, after.StockByWarehouse["alm-1"], "el stock queda intacto")
}

func TestSparePartAdjustStock_ValidaEntrada(t *testing.T) {
	uc := newSparePartUC(t)
	created, err := uc.Create(sparePartRequest("REP-VAL"))
	require.NoError(t, err)

	_, err = uc.AdjustStock(created.ID, dto.AdjustStockRequest{WarehouseID: "", Delta: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustStock(created.ID, dto.AdjustStockRequest{WarehouseID: "alm-1", Delta: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta cero no es un ajuste")

	_, err = uc.AdjustStock("no-existe", dto.AdjustStockRequest{WarehouseID: "alm-1", Delta: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
