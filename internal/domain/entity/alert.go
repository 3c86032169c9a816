package entity

import "time"

// Tipos de alerta. El tipo fuel está reservado: existe en el vocabulario que
// filtran las vistas pero todavía no hay regla que lo genere.
// TODO: definir la regla de consumo anómalo de combustible (litros/hora fuera
// de rango histórico por máquina) y emitir alertas tipo fuel desde el agregador.
const (
	AlertMaintenance = "maintenance"
	AlertDocument    = "document"
	AlertStock       = "stock"
	AlertFuel        = "fuel"
)

// Severity urgencia ordenada de una alerta: low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank devuelve el orden numérico de la severidad (para ordenar y comparar).
// Severidades desconocidas quedan por debajo de low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

// ParseSeverity normaliza un string de configuración a Severity.
// Valores no reconocidos caen en medium para no silenciar condiciones reales.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(s)
	}
	return SeverityMedium
}

// Alert condición operativa derivada (o evento manual) que requiere atención.
// Resolved muta exactamente una vez en su ciclo de vida (false → true);
// resolver una alerta ya resuelta es un no-op.
type Alert struct {
	ID          string
	Type        string
	Title       string
	Description string
	Severity    Severity
	Entity      EntityRef
	CreatedAt   time.Time
	Resolved    bool
}
