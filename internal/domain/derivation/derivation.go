// Package derivation contiene los clasificadores puros que convierten el
// estado crudo de las entidades (repuestos, vehículos, maquinaria) más la
// fecha actual en etiquetas operativas: nivel de stock, vigencia documental y
// vencimiento de mantenimiento.
//
// Todas las funciones son deterministas y sin efectos: el mismo snapshot y el
// mismo "now" producen siempre la misma clasificación, así que es seguro
// recalcular en cada lectura. Entradas malformadas (fechas en cero, cantidades
// negativas) clasifican como desconocido; nunca se asume el estado "seguro".
package derivation

import (
	"math"
	"time"
)

// Thresholds umbrales de clasificación. Son configuración de negocio
// (pkg/config los carga desde env), no constantes del código.
type Thresholds struct {
	DocumentWindowDays    int // ventana "por vencer" de documentos
	MaintenanceWindowDays int // ventana "mantenimiento próximo"
}

// DefaultThresholds valores por defecto: 30 días para ambas ventanas,
// el mismo patrón que usa el negocio para los documentos vehiculares.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DocumentWindowDays:    30,
		MaintenanceWindowDays: 30,
	}
}

// daysUntil días completos (redondeo hacia arriba) entre now y la fecha dada.
// Negativo si la fecha ya pasó.
func daysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}
