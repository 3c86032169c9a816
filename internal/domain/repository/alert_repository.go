package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// AlertRepository puerto de persistencia para alertas.
//
// La identidad de una alerta derivada es determinista (misma condición →
// mismo ID), así que CreateIfAbsent hace la re-derivación idempotente: la
// fila existente —incluido su flag Resolved— se conserva intacta.
type AlertRepository interface {
	// CreateIfAbsent inserta la alerta solo si el ID no existe todavía
	// (ON CONFLICT DO NOTHING). Nunca pisa una fila existente.
	CreateIfAbsent(a *entity.Alert) error

	GetByID(id string) (*entity.Alert, error)
	List() ([]*entity.Alert, error)

	// MarkResolved marca la alerta como resuelta. Idempotente y total:
	// resolver una alerta ya resuelta o un ID inexistente es un no-op, no un error.
	MarkResolved(id string) error

	// CountUnresolved cuenta las alertas no resueltas con la severidad dada.
	CountUnresolved(severity entity.Severity) (int, error)
}
