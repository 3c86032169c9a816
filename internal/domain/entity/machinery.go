package entity

import "time"

// Estados operativos compartidos por maquinaria y vehículos.
const (
	StatusDisponible    = "disponible"
	StatusAlquilado     = "alquilado"
	StatusMantenimiento = "mantenimiento"
	StatusFueraServicio = "fuera_servicio"
)

// Condición física de la maquinaria.
const (
	CondicionExcelente = "excelente"
	CondicionBueno     = "bueno"
	CondicionRegular   = "regular"
	CondicionMalo      = "malo"
)

// Machinery representa una máquina pesada de la flota de alquiler
// (excavadora, retroexcavadora, volquete, etc.).
//
// NextMaintenance es la fecha calendario del próximo servicio programado y es
// la única fuente para la clasificación de mantenimiento. Los intervalos por
// horómetro (MaintenanceIntervalHours) se registran pero todavía no disparan
// vencimientos: la política vigente es solo por calendario.
type Machinery struct {
	ID           string
	Name         string
	Category     string
	Brand        string
	Model        string
	SerialNumber string
	Year         int
	Hourmeter    int // horómetro: horas de operación acumuladas
	Condition    string
	Status       string
	WarehouseID  string

	LastMaintenance          *time.Time
	NextMaintenance          *time.Time
	MaintenanceIntervalHours int
	MaintenanceIntervalDays  int

	CreatedAt time.Time
}
