package derivation

import (
	"time"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// MaintenanceStatus estado del próximo mantenimiento programado de una máquina.
type MaintenanceStatus string

const (
	MaintenanceDue      MaintenanceStatus = "due"
	MaintenanceUpcoming MaintenanceStatus = "upcoming"
	MaintenanceOK       MaintenanceStatus = "ok"
	MaintenanceUnknown  MaintenanceStatus = "unknown"
)

// ClassifyMaintenance clasifica la fecha NextMaintenance de la máquina:
//
//	fecha pasada                       → due
//	dentro de windowDays               → upcoming
//	más allá de la ventana             → ok
//	sin fecha programada               → unknown
//
// La política vigente es solo por calendario: el horómetro actual nunca se
// compara contra MaintenanceIntervalHours aunque el campo exista.
func ClassifyMaintenance(m *entity.Machinery, now time.Time, windowDays int) MaintenanceStatus {
	if m == nil || m.NextMaintenance == nil || m.NextMaintenance.IsZero() {
		return MaintenanceUnknown
	}
	next := *m.NextMaintenance
	if next.Before(now) {
		return MaintenanceDue
	}
	if daysUntil(next, now) <= windowDays {
		return MaintenanceUpcoming
	}
	return MaintenanceOK
}
