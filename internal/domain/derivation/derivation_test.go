package derivation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/rental-pro/internal/domain/derivation"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyStock — el total es siempre la suma multi-almacén
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStock_TotalSobreMinimo_Normal(t *testing.T) {
	p := &entity.SparePart{
		MinStock:         3,
		StockByWarehouse: map[string]int{"alm-a": 5, "alm-b": 3},
	}
	assert.Equal(t, derivation.StockNormal, derivation.ClassifyStock(p))
}

// La clasificación mira el total agregado, nunca un almacén individual:
// un almacén en cero no significa stock bajo si el otro cubre el mínimo.
func TestClassifyStock_SumaMultiAlmacen(t *testing.T) {
	p := &entity.SparePart{
		MinStock:         3,
		StockByWarehouse: map[string]int{"alm-a": 8, "alm-b": 0},
	}
	assert.Equal(t, derivation.StockNormal, derivation.ClassifyStock(p))
}

func TestClassifyStock_TotalBajoMinimo_StockBajo(t *testing.T) {
	p := &entity.SparePart{
		MinStock:         5,
		StockByWarehouse: map[string]int{"alm-a": 2, "alm-b": 0},
	}
	assert.Equal(t, derivation.StockBajo, derivation.ClassifyStock(p))
}

// El umbral es inclusivo: total == MinStock ya es stock bajo.
func TestClassifyStock_TotalIgualMinimo_StockBajo(t *testing.T) {
	p := &entity.SparePart{
		MinStock:         4,
		StockByWarehouse: map[string]int{"alm-a": 4},
	}
	assert.Equal(t, derivation.StockBajo, derivation.ClassifyStock(p))
}

func TestClassifyStock_TotalCero_SinStock(t *testing.T) {
	p := &entity.SparePart{
		MinStock:         2,
		StockByWarehouse: map[string]int{"alm-a": 0},
	}
	assert.Equal(t, derivation.StockSinStock, derivation.ClassifyStock(p))

	// Sin filas de stock también cuenta como total cero.
	vacio := &entity.SparePart{MinStock: 2, StockByWarehouse: map[string]int{}}
	assert.Equal(t, derivation.StockSinStock, derivation.ClassifyStock(vacio))
}

// sin_stock gana sobre stock_bajo: cero unidades nunca se reporta como "bajo"
// aunque 0 <= MinStock.
func TestClassifyStock_CeroConMinimoCero_SinStock(t *testing.T) {
	p := &entity.SparePart{MinStock: 0, StockByWarehouse: map[string]int{}}
	assert.Equal(t, derivation.StockSinStock, derivation.ClassifyStock(p))
}

func TestClassifyStock_DatosCorruptos_Desconocido(t *testing.T) {
	negativo := &entity.SparePart{
		MinStock:         3,
		StockByWarehouse: map[string]int{"alm-a": -1, "alm-b": 10},
	}
	assert.Equal(t, derivation.StockDesconocido, derivation.ClassifyStock(negativo))

	minNegativo := &entity.SparePart{
		MinStock:         -1,
		StockByWarehouse: map[string]int{"alm-a": 10},
	}
	assert.Equal(t, derivation.StockDesconocido, derivation.ClassifyStock(minNegativo))

	assert.Equal(t, derivation.StockDesconocido, derivation.ClassifyStock(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyDocument — SOAT y revisión técnica usan la misma regla
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyDocument_FechaPasada_Expired(t *testing.T) {
	exp := testNow.AddDate(0, 0, -1)
	assert.Equal(t, derivation.DocumentExpired, derivation.ClassifyDocument(exp, testNow, 30))
}

func TestClassifyDocument_DentroDeVentana_Expiring(t *testing.T) {
	exp := testNow.AddDate(0, 0, 10)
	assert.Equal(t, derivation.DocumentExpiring, derivation.ClassifyDocument(exp, testNow, 30))
}

// El límite de la ventana es inclusivo: exactamente windowDays días restantes
// todavía clasifica como por vencer.
func TestClassifyDocument_BordeDeVentana_Expiring(t *testing.T) {
	exp := testNow.AddDate(0, 0, 30)
	assert.Equal(t, derivation.DocumentExpiring, derivation.ClassifyDocument(exp, testNow, 30))
}

func TestClassifyDocument_FueraDeVentana_Valid(t *testing.T) {
	exp := testNow.AddDate(0, 0, 31)
	assert.Equal(t, derivation.DocumentValid, derivation.ClassifyDocument(exp, testNow, 30))
}

// Los días restantes se redondean hacia arriba: vencer mañana a cualquier hora
// cuenta como 1 día, nunca como 0.
func TestClassifyDocument_VenceManana_RedondeaHaciaArriba(t *testing.T) {
	exp := testNow.Add(6 * time.Hour) // hoy mismo, en unas horas
	assert.Equal(t, derivation.DocumentExpiring, derivation.ClassifyDocument(exp, testNow, 1))
}

// Una fecha en cero es dato ausente: nunca se asume vigente.
func TestClassifyDocument_FechaCero_Unknown(t *testing.T) {
	assert.Equal(t, derivation.DocumentUnknown, derivation.ClassifyDocument(time.Time{}, testNow, 30))
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyMaintenance — política solo por calendario
// ──────────────────────────────────────────────────────────────────────────────

func maquinaConProximo(next time.Time) *entity.Machinery {
	return &entity.Machinery{ID: "maq-1", Name: "Excavadora", NextMaintenance: &next}
}

func TestClassifyMaintenance_FechaPasada_Due(t *testing.T) {
	m := maquinaConProximo(testNow.AddDate(0, 0, -2))
	assert.Equal(t, derivation.MaintenanceDue, derivation.ClassifyMaintenance(m, testNow, 30))
}

func TestClassifyMaintenance_DentroDeVentana_Upcoming(t *testing.T) {
	m := maquinaConProximo(testNow.AddDate(0, 0, 15))
	assert.Equal(t, derivation.MaintenanceUpcoming, derivation.ClassifyMaintenance(m, testNow, 30))
}

func TestClassifyMaintenance_BordeDeVentana_Upcoming(t *testing.T) {
	m := maquinaConProximo(testNow.AddDate(0, 0, 30))
	assert.Equal(t, derivation.MaintenanceUpcoming, derivation.ClassifyMaintenance(m, testNow, 30))
}

func TestClassifyMaintenance_FueraDeVentana_OK(t *testing.T) {
	m := maquinaConProximo(testNow.AddDate(0, 3, 0))
	assert.Equal(t, derivation.MaintenanceOK, derivation.ClassifyMaintenance(m, testNow, 30))
}

func TestClassifyMaintenance_SinFecha_Unknown(t *testing.T) {
	sinFecha := &entity.Machinery{ID: "maq-2", Name: "Volquete"}
	assert.Equal(t, derivation.MaintenanceUnknown, derivation.ClassifyMaintenance(sinFecha, testNow, 30))

	cero := time.Time{}
	conCero := &entity.Machinery{ID: "maq-3", NextMaintenance: &cero}
	assert.Equal(t, derivation.MaintenanceUnknown, derivation.ClassifyMaintenance(conCero, testNow, 30))

	assert.Equal(t, derivation.MaintenanceUnknown, derivation.ClassifyMaintenance(nil, testNow, 30))
}

// El horómetro no participa en la clasificación: aunque las horas acumuladas
// superen el intervalo, solo la fecha calendario decide.
func TestClassifyMaintenance_HorometroNoDispara(t *testing.T) {
	next := testNow.AddDate(0, 6, 0)
	m := &entity.Machinery{
		ID:                       "maq-4",
		Hourmeter:                9000,
		MaintenanceIntervalHours: 250,
		NextMaintenance:          &next,
	}
	assert.Equal(t, derivation.MaintenanceOK, derivation.ClassifyMaintenance(m, testNow, 30))
}

// Mismo snapshot y mismo now → misma clasificación, siempre.
func TestClassify_Determinista(t *testing.T) {
	p := &entity.SparePart{MinStock: 3, StockByWarehouse: map[string]int{"alm-a": 2}}
	assert.Equal(t, derivation.ClassifyStock(p), derivation.ClassifyStock(p))

	exp := testNow.AddDate(0, 0, 5)
	assert.Equal(t,
		derivation.ClassifyDocument(exp, testNow, 30),
		derivation.ClassifyDocument(exp, testNow, 30))
}
