package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rental-pro/internal/application/alerts"
	"github.com/tu-usuario/rental-pro/internal/domain/derivation"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
	"github.com/tu-usuario/rental-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/rental-pro/pkg/logger"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// fixture agrupa los repositorios en memoria y el agregador bajo prueba.
type fixture struct {
	machinery repository.MachineryRepository
	vehicles  repository.VehicleRepository
	parts     repository.SparePartRepository
	alerts    repository.AlertRepository
	ag        *alerts.Aggregator
}

func newFixture(t *testing.T, cfg alerts.Config) *fixture {
	t.Helper()
	f := &fixture{
		machinery: memory.NewMachineryRepository(),
		vehicles:  memory.NewVehicleRepository(),
		parts:     memory.NewSparePartRepository(),
		alerts:    memory.NewAlertRepository(),
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	f.ag = alerts.NewAggregator(f.machinery, f.vehicles, f.parts, f.alerts, cfg, log)
	return f
}

func defaultFixture(t *testing.T) *fixture {
	return newFixture(t, alerts.DefaultConfig())
}

func (f *fixture) addPart(t *testing.T, code string, minStock int, stock map[string]int) *entity.SparePart {
	t.Helper()
	p := &entity.SparePart{
		ID: "part-" + code, Code: code, Name: "Repuesto " + code,
		MinStock: minStock, StockByWarehouse: stock, CreatedAt: testNow,
	}
	require.NoError(t, f.parts.Create(p))
	return p
}

func (f *fixture) addVehicle(t *testing.T, plate string, soat, review time.Time) *entity.Vehicle {
	t.Helper()
	v := &entity.Vehicle{
		ID: "veh-" + plate, Plate: plate, Status: entity.StatusDisponible,
		SoatExpiration: soat, TechnicalReviewExpiration: review, CreatedAt: testNow,
	}
	require.NoError(t, f.vehicles.Create(v))
	return v
}

func (f *fixture) addMachine(t *testing.T, name string, next *time.Time) *entity.Machinery {
	t.Helper()
	m := &entity.Machinery{
		ID: "maq-" + name, Name: name, Status: entity.StatusDisponible,
		NextMaintenance: next, CreatedAt: testNow,
	}
	require.NoError(t, f.machinery.Create(m))
	return m
}

func alertsOfType(items []*entity.Alert, alertType string) []*entity.Alert {
	var out []*entity.Alert
	for _, a := range items {
		if a.Type == alertType {
			out = append(out, a)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia de la re-derivación
// ──────────────────────────────────────────────────────────────────────────────

// Derivar dos veces sobre el mismo estado no duplica alertas: la misma
// condición produce siempre el mismo ID.
func TestDeriveAlerts_Rederivacion_NoDuplica(t *testing.T) {
	f := defaultFixture(t)
	f.addPart(t, "FLT-001", 5, map[string]int{"alm-a": 2})
	f.addVehicle(t, "V7K-482", testNow.AddDate(0, 0, -3), testNow.AddDate(1, 0, 0))

	primera, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	segunda, err := f.ag.DeriveAlerts(testNow.Add(2 * time.Hour))
	require.NoError(t, err)

	assert.Len(t, primera, 2, "stock bajo + SOAT vencido")
	assert.Len(t, segunda, 2, "re-derivar no debe crear alertas nuevas")

	ids := map[string]bool{}
	for _, a := range primera {
		ids[a.ID] = true
	}
	for _, a := range segunda {
		assert.True(t, ids[a.ID], "la re-derivación debe conservar los mismos IDs")
	}
}

// Una alerta resuelta cuya condición persiste no reaparece como no resuelta:
// CreateIfAbsent nunca pisa la fila existente.
func TestDeriveAlerts_ResueltaPersisteTrasRederivar(t *testing.T) {
	f := defaultFixture(t)
	f.addPart(t, "FLT-002", 3, map[string]int{})

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NoError(t, f.ag.Resolve(items[0].ID))

	// El repuesto sigue sin stock; re-derivamos.
	items, err = f.ag.DeriveAlerts(testNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Resolved, "la alerta resuelta debe seguir resuelta")
}

// Resolver es idempotente y total: repetir la resolución o resolver un ID
// inexistente no es un error.
func TestResolve_Idempotente(t *testing.T) {
	f := defaultFixture(t)
	f.addPart(t, "FLT-003", 3, map[string]int{})

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.NoError(t, f.ag.Resolve(items[0].ID))
	assert.NoError(t, f.ag.Resolve(items[0].ID), "resolver dos veces es un no-op")
	assert.NoError(t, f.ag.Resolve("no-existe"), "ID inexistente es un no-op")
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidad por discriminador
// ──────────────────────────────────────────────────────────────────────────────

// Renovar el documento y volver a entrar en ventana es una condición nueva:
// el discriminador incluye la fecha de vencimiento, así que la identidad cambia.
func TestDeriveAlerts_DocumentoRenovado_IdentidadNueva(t *testing.T) {
	f := defaultFixture(t)
	v := f.addVehicle(t, "B3N-901", testNow.AddDate(0, 0, 5), testNow.AddDate(5, 0, 0))

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	require.Len(t, items, 1)
	original := items[0]
	require.NoError(t, f.ag.Resolve(original.ID))

	// Renovación: SOAT un año adelante, luego el tiempo avanza hasta que la
	// nueva fecha vuelve a entrar en ventana.
	v.SoatExpiration = testNow.AddDate(1, 0, 0)
	require.NoError(t, f.vehicles.Update(v))
	futuro := testNow.AddDate(1, 0, -10)

	items, err = f.ag.DeriveAlerts(futuro)
	require.NoError(t, err)
	require.Len(t, items, 2, "la original resuelta + la nueva ocurrencia")

	var nueva *entity.Alert
	for _, a := range items {
		if a.ID != original.ID {
			nueva = a
		}
	}
	require.NotNil(t, nueva, "la nueva ocurrencia debe tener identidad distinta")
	assert.False(t, nueva.Resolved)
}

// SOAT y revisión técnica son vencimientos independientes: el mismo vehículo
// puede tener dos alertas documentales a la vez.
func TestDeriveAlerts_SoatYRevisionIndependientes(t *testing.T) {
	f := defaultFixture(t)
	f.addVehicle(t, "C1D-223", testNow.AddDate(0, 0, -5), testNow.AddDate(0, 0, 10))

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)

	docs := alertsOfType(items, entity.AlertDocument)
	require.Len(t, docs, 2)

	bySeverity := map[entity.Severity]int{}
	for _, a := range docs {
		bySeverity[a.Severity]++
	}
	assert.Equal(t, 1, bySeverity[entity.SeverityHigh], "vencido → high")
	assert.Equal(t, 1, bySeverity[entity.SeverityMedium], "por vencer → medium")
}

// Tras un servicio la fecha programada cambia; si vuelve a vencer, la
// ocurrencia es una alerta distinta de la anterior.
func TestDeriveAlerts_MantenimientoReprogramado_IdentidadNueva(t *testing.T) {
	f := defaultFixture(t)
	vencido := testNow.AddDate(0, 0, -7)
	m := f.addMachine(t, "CAT320D", &vencido)

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	require.Len(t, items, 1)
	original := items[0].ID

	// Servicio realizado: próxima fecha en 90 días... que luego también vence.
	nueva := testNow.AddDate(0, 0, 90)
	require.NoError(t, f.machinery.UpdateMaintenanceDates(m.ID, testNow, &nueva))

	items, err = f.ag.DeriveAlerts(testNow.AddDate(0, 0, 95))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)

	found := false
	for _, a := range items {
		if a.ID == original {
			found = true
		}
	}
	assert.True(t, found, "la ocurrencia anterior se conserva en el historial")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de emisión y severidad
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveAlerts_StockUsaSeveridadConfigurada(t *testing.T) {
	f := newFixture(t, alerts.Config{
		Thresholds:         derivation.DefaultThresholds(),
		LowStockSeverity:   entity.SeverityHigh,
		OutOfStockSeverity: entity.SeverityCritical,
	})
	f.addPart(t, "BAJO", 5, map[string]int{"alm-a": 2})
	f.addPart(t, "CERO", 5, map[string]int{})

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)

	stock := alertsOfType(items, entity.AlertStock)
	require.Len(t, stock, 2)
	severities := map[entity.Severity]int{}
	for _, a := range stock {
		severities[a.Severity]++
	}
	assert.Equal(t, 1, severities[entity.SeverityHigh], "stock_bajo toma la severidad configurada")
	assert.Equal(t, 1, severities[entity.SeverityCritical], "sin_stock toma la severidad configurada")
}

// Stock normal, documentos vigentes y mantenimiento lejano no emiten nada.
func TestDeriveAlerts_EstadoSano_SinAlertas(t *testing.T) {
	f := defaultFixture(t)
	f.addPart(t, "OK", 3, map[string]int{"alm-a": 20})
	f.addVehicle(t, "SANO-1", testNow.AddDate(1, 0, 0), testNow.AddDate(1, 0, 0))
	lejos := testNow.AddDate(0, 6, 0)
	f.addMachine(t, "JCB3CX", &lejos)

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Solo el vencimiento efectivo emite alerta de mantenimiento; una fecha dentro
// de la ventana "próximo" se refleja en el estado derivado de la máquina pero
// no genera alerta.
func TestDeriveAlerts_MantenimientoProximo_NoEmite(t *testing.T) {
	f := defaultFixture(t)
	proximo := testNow.AddDate(0, 0, 10)
	f.addMachine(t, "VOLVO", &proximo)

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	assert.Empty(t, alertsOfType(items, entity.AlertMaintenance))
}

// Datos ausentes (fechas en cero, máquinas sin programación) no emiten
// alertas: desconocido nunca se confunde con vencido.
func TestDeriveAlerts_DatosAusentes_NoEmite(t *testing.T) {
	f := defaultFixture(t)
	f.addVehicle(t, "SIN-DOC", time.Time{}, time.Time{})
	f.addMachine(t, "SIN-PROG", nil)

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas manuales
// ──────────────────────────────────────────────────────────────────────────────

// Dos eventos manuales idénticos son alertas distintas: la identidad manual
// es aleatoria, no derivada de la condición.
func TestRaise_EventosIgualesSonAlertasDistintas(t *testing.T) {
	f := defaultFixture(t)
	ref := entity.EntityRef{Kind: entity.KindMachinery, ID: "maq-1"}

	a1, err := f.ag.Raise(entity.AlertStock, "Revisar almacén", "conteo físico pendiente", entity.SeverityLow, ref, testNow)
	require.NoError(t, err)
	a2, err := f.ag.Raise(entity.AlertStock, "Revisar almacén", "conteo físico pendiente", entity.SeverityLow, ref, testNow)
	require.NoError(t, err)

	assert.NotEqual(t, a1.ID, a2.ID)

	items, err := f.ag.DeriveAlerts(testNow)
	require.NoError(t, err)
	assert.Len(t, items, 2, "ambas manuales sobreviven la derivación")
}
