package entity

import "time"

// Warehouse representa un almacén físico donde se guarda maquinaria,
// vehículos, herramientas y repuestos.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	City      string
	CreatedAt time.Time
}
