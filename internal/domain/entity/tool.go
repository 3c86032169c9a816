package entity

import "time"

// Estados de herramienta (binario: sin estado de mantenimiento).
const (
	ToolDisponible   = "disponible"
	ToolNoDisponible = "no_disponible"
)

// Tool representa una herramienta menor con código interno único.
type Tool struct {
	ID           string
	Name         string
	InternalCode string
	Status       string
	Observations string
	WarehouseID  string
	CreatedAt    time.Time
}
